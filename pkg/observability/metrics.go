package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics publishes scoring metrics to CloudWatch. A nil client turns
// every call into a no-op, which keeps tests and local runs quiet.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
}

// NewMetrics creates a metrics instance
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// BatchResult summarizes one processed stream batch.
type BatchResult struct {
	Scored   int
	Skipped  int
	Failed   int
	Duration time.Duration
}

// RecordBatch emits per-batch counters and duration. Metric delivery is
// best effort; a failed put never affects batch processing.
func (m *Metrics) RecordBatch(ctx context.Context, result BatchResult) {
	if m == nil || m.client == nil {
		return
	}

	now := time.Now()
	data := []cwtypes.MetricDatum{
		counter("RecordsScored", result.Scored, now),
		counter("RecordsSkipped", result.Skipped, now),
		counter("PersistFailures", result.Failed, now),
		{
			MetricName: aws.String("BatchDuration"),
			Value:      aws.Float64(float64(result.Duration.Milliseconds())),
			Unit:       cwtypes.StandardUnitMilliseconds,
			Timestamp:  aws.Time(now),
		},
	}

	_, _ = m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	})
}

func counter(name string, value int, at time.Time) cwtypes.MetricDatum {
	return cwtypes.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(float64(value)),
		Unit:       cwtypes.StandardUnitCount,
		Timestamp:  aws.Time(at),
	}
}
