package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"personality-backend/application/ports"
	"personality-backend/domain/personality"
	apperrors "personality-backend/pkg/errors"
)

// ProfileRepository implements the ProfileStore interface using DynamoDB
type ProfileRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProfileStore {
	return &ProfileRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// profileClassification is the slice of the profile item this repository
// owns. The profile carries other attributes (contact details, settings)
// that scoring must never touch.
type profileClassification struct {
	PersonalityType       string             `dynamodbav:"PersonalityType"`
	PersonalityTestStatus string             `dynamodbav:"PersonalityTestStatus"`
	AxisRatios            map[string]float64 `dynamodbav:"AxisRatios"`
}

// UpdateClassification overwrites only the classification fields of the
// user's profile via an update expression. Repeated writes of the same
// classification leave the item unchanged, which is what makes stream
// redelivery safe.
func (r *ProfileRepository) UpdateClassification(ctx context.Context, userID string, result personality.Classification) error {
	ratios := make(map[string]float64, len(result.Ratios))
	for axis, ratio := range result.Ratios {
		ratios[string(axis)] = ratio
	}

	update := expression.
		Set(expression.Name("PersonalityType"), expression.Value(result.PersonalityType)).
		Set(expression.Name("PersonalityTestStatus"), expression.Value(result.Status)).
		Set(expression.Name("AxisRatios"), expression.Value(ratios)).
		Set(expression.Name("UpdatedAt"), expression.Value(time.Now().UTC().Format(time.RFC3339)))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": fmt.Sprintf("USER#%s", userID),
		"SK": "PROFILE",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal profile key: %w", err)
	}

	if _, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}); err != nil {
		r.logger.Error("Failed to update profile classification",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to update classification: %w", err)
	}

	return nil
}

// GetClassification retrieves the user's current classification
func (r *ProfileRepository) GetClassification(ctx context.Context, userID string) (*personality.Classification, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": fmt.Sprintf("USER#%s", userID),
		"SK": "PROFILE",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile key: %w", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, apperrors.NewNotFoundError("profile")
	}

	var item profileClassification
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if item.PersonalityTestStatus == "" {
		return nil, apperrors.NewNotFoundError("classification")
	}

	ratios := make(map[personality.Axis]float64, len(item.AxisRatios))
	for axis, ratio := range item.AxisRatios {
		ratios[personality.Axis(axis)] = ratio
	}

	return &personality.Classification{
		PersonalityType: item.PersonalityType,
		Ratios:          ratios,
		Status:          item.PersonalityTestStatus,
	}, nil
}
