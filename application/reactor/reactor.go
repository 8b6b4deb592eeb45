// Package reactor bridges the submission table's change stream to the
// scoring core. It consumes one batch at a time, scores relevant records
// sequentially in delivery order and persists each result independently.
package reactor

import (
	"context"
	"time"

	awsevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"personality-backend/application/commands/handlers"
	"personality-backend/application/ports"
	"personality-backend/domain/personality"
	"personality-backend/pkg/errors"
	"personality-backend/pkg/observability"
)

// Reactor processes change-stream batches. The question catalog is
// fetched once per batch so every record is scored against the same
// snapshot; a catalog load failure fails the whole invocation so the
// stream redelivers the batch. Everything else is recovered per record.
type Reactor struct {
	catalog ports.QuestionCatalog
	handler *handlers.ScoreSubmissionHandler
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewReactor creates a new stream reactor
func NewReactor(
	catalog ports.QuestionCatalog,
	handler *handlers.ScoreSubmissionHandler,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Reactor {
	return &Reactor{
		catalog: catalog,
		handler: handler,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleBatch processes one stream batch. It returns an error only when
// the batch cannot be scored at all; per-record failures are logged and
// the remaining records still run. No retries happen here — redelivery
// is the stream's job.
func (r *Reactor) HandleBatch(ctx context.Context, event awsevents.DynamoDBEvent) error {
	start := time.Now()

	questions, err := r.catalog.ScanAll(ctx)
	if err != nil {
		return errors.NewCatalogLoadError(err)
	}
	catalog := personality.NewCatalog(questions)

	var scored, skipped, failed int
	for _, record := range event.Records {
		if !relevant(record) {
			skipped++
			continue
		}

		cmd, err := CommandFromRecord(record)
		if err != nil {
			r.logger.Warn("Skipping malformed stream record",
				zap.String("eventID", record.EventID),
				zap.String("eventName", record.EventName),
				zap.Error(err),
			)
			skipped++
			continue
		}

		if err := r.handler.Handle(ctx, catalog, cmd); err != nil {
			r.logger.Error("Failed to process stream record",
				zap.String("eventID", record.EventID),
				zap.String("userID", cmd.UserID),
				zap.Error(err),
			)
			failed++
			continue
		}
		scored++
	}

	duration := time.Since(start)
	r.metrics.RecordBatch(ctx, observability.BatchResult{
		Scored:   scored,
		Skipped:  skipped,
		Failed:   failed,
		Duration: duration,
	})

	r.logger.Info("Processed stream batch",
		zap.Int("records", len(event.Records)),
		zap.Int("scored", scored),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
		zap.Int("catalogSize", len(catalog)),
		zap.Duration("duration", duration),
	)

	return nil
}
