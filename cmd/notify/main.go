// Package main implements the Lambda that tells connected WebSocket
// clients their personality result is ready. It consumes the scored
// events published after each successful profile write-back.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"personality-backend/application/ports"
	"personality-backend/infrastructure/config"
	"personality-backend/infrastructure/messaging/eventbridge"
)

// Global AWS clients for Lambda performance optimization
var (
	cfg          *config.Config
	logger       *zap.Logger
	dynamoClient *dynamodb.Client
	apiGwClient  *apigatewaymanagementapi.Client
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	dynamoClient = dynamodb.NewFromConfig(awsCfg)
	if cfg.WebSocketEndpoint != "" {
		apiGwClient = apigatewaymanagementapi.NewFromConfig(awsCfg, func(o *apigatewaymanagementapi.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s", cfg.WebSocketEndpoint))
		})
	}

	logger.Info("Notify handler initialized")
}

// resultMessage is the payload pushed to WebSocket clients
type resultMessage struct {
	Type            string `json:"type"`
	Timestamp       int64  `json:"timestamp"`
	PersonalityType string `json:"personalityType"`
}

func handler(ctx context.Context, event awsevents.CloudWatchEvent) error {
	if event.DetailType != eventbridge.DetailTypePersonalityScored {
		logger.Debug("Ignoring event", zap.String("detailType", event.DetailType))
		return nil
	}
	if apiGwClient == nil {
		logger.Warn("WebSocket endpoint not configured, dropping notification")
		return nil
	}

	var scored ports.PersonalityScoredEvent
	if err := json.Unmarshal(event.Detail, &scored); err != nil {
		logger.Warn("Unparseable scored event", zap.Error(err))
		return nil
	}
	if scored.UserID == "" {
		logger.Warn("Scored event without user ID")
		return nil
	}

	connectionIDs, err := connectionsForUser(ctx, scored.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up connections: %w", err)
	}
	if len(connectionIDs) == 0 {
		logger.Debug("No active connections", zap.String("userID", scored.UserID))
		return nil
	}

	payload, err := json.Marshal(resultMessage{
		Type:            "personality_result_ready",
		Timestamp:       time.Now().Unix(),
		PersonalityType: scored.PersonalityType,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err != nil {
			var gone *apigwtypes.GoneException
			if errors.As(err, &gone) {
				deleteConnection(ctx, connectionID)
				continue
			}
			logger.Warn("Failed to post to connection",
				zap.String("connectionID", connectionID),
				zap.Error(err),
			)
		}
	}

	return nil
}

// connectionsForUser retrieves all active connection IDs for a user
func connectionsForUser(ctx context.Context, userID string) ([]string, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(fmt.Sprintf("USER#%s", userID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	result, err := dynamoClient.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(cfg.ConnectionsTable),
		IndexName:                 aws.String(cfg.ConnectionsIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, err
	}

	var connectionIDs []string
	for _, item := range result.Items {
		if connID, ok := item["ConnectionID"].(*dynamodbtypes.AttributeValueMemberS); ok {
			connectionIDs = append(connectionIDs, connID.Value)
		}
	}

	return connectionIDs, nil
}

// deleteConnection drops a stale connection record
func deleteConnection(ctx context.Context, connectionID string) {
	_, err := dynamoClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(cfg.ConnectionsTable),
		Key: map[string]dynamodbtypes.AttributeValue{
			"PK": &dynamodbtypes.AttributeValueMemberS{Value: fmt.Sprintf("CONNECTION#%s", connectionID)},
			"SK": &dynamodbtypes.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		logger.Warn("Failed to delete stale connection",
			zap.String("connectionID", connectionID),
			zap.Error(err),
		)
		return
	}
	logger.Debug("Deleted stale connection", zap.String("connectionID", connectionID))
}

func main() {
	lambda.Start(handler)
}
