// Package main implements the Lambda handler for the submission stream.
// Each batch of change records is scored against one catalog snapshot and
// the results are written back onto user profiles.
package main

import (
	"context"
	"log"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"personality-backend/infrastructure/config"
	"personality-backend/infrastructure/di"
)

// Global dependencies for Lambda performance optimization
var container *di.Container

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}

	container.Logger.Info("Score processor initialized")
}

// handler processes one stream batch. Returning an error makes the
// stream redeliver the batch, which is the retry policy for failures
// that prevent any record from being scored.
func handler(ctx context.Context, event awsevents.DynamoDBEvent) error {
	return container.Reactor.HandleBatch(ctx, event)
}

func main() {
	lambda.Start(handler)
}
