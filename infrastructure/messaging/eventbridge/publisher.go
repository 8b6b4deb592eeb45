package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"personality-backend/application/ports"
)

// DetailTypePersonalityScored is the EventBridge detail-type emitted
// after a classification write-back succeeds.
const DetailTypePersonalityScored = "PersonalityScored"

const eventSource = "personality-backend.scoring"

// Publisher implements the EventBus interface using EventBridge
type Publisher struct {
	client  *eventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(client *eventbridge.Client, busName string, logger *zap.Logger) ports.EventBus {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

// PublishPersonalityScored emits a scored event for downstream consumers
func (p *Publisher) PublishPersonalityScored(ctx context.Context, event ports.PersonalityScoredEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal scored event: %w", err)
	}

	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.busName),
				Source:       aws.String(eventSource),
				DetailType:   aws.String(DetailTypePersonalityScored),
				Detail:       aws.String(string(detail)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put event: %w", err)
	}
	if out.FailedEntryCount > 0 {
		entry := out.Entries[0]
		return fmt.Errorf("event bus rejected entry: %s (%s)",
			aws.ToString(entry.ErrorMessage), aws.ToString(entry.ErrorCode))
	}

	p.logger.Debug("Published scored event",
		zap.String("userID", event.UserID),
		zap.String("personalityType", event.PersonalityType),
	)

	return nil
}
