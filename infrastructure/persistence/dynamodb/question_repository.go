package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"personality-backend/application/ports"
	"personality-backend/domain/personality"
)

// QuestionRepository implements the QuestionCatalog interface using DynamoDB
type QuestionRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.QuestionCatalog {
	return &QuestionRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// questionItem represents the DynamoDB item structure for a catalog question
type questionItem struct {
	PK         string `dynamodbav:"PK"` // QUESTION#<id>
	SK         string `dynamodbav:"SK"` // Always "METADATA"
	EntityType string `dynamodbav:"EntityType"`
	QuestionID string `dynamodbav:"QuestionID"`
	Category   string `dynamodbav:"Category"`
	Score      int    `dynamodbav:"Score"`
}

// ScanAll retrieves the full question catalog. No filtering happens at
// the call site; every batch scores against the complete snapshot.
func (r *QuestionRepository) ScanAll(ctx context.Context) ([]personality.Question, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("EntityType").Equal(expression.Value("QUESTION"))).
		WithProjection(expression.NamesList(
			expression.Name("QuestionID"),
			expression.Name("Category"),
			expression.Name("Score"),
		)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var questions []personality.Question
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) {
				r.logger.Error("Catalog scan failed",
					zap.String("code", apiErr.ErrorCode()),
					zap.Error(err),
				)
			}
			return nil, fmt.Errorf("failed to scan question catalog: %w", err)
		}

		var items []questionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}

		for _, item := range items {
			category := personality.Axis(item.Category)
			if !category.IsValid() {
				r.logger.Warn("Dropping question with unknown category",
					zap.String("questionID", item.QuestionID),
					zap.String("category", item.Category),
				)
				continue
			}
			questions = append(questions, personality.Question{
				ID:       item.QuestionID,
				Category: category,
				Score:    item.Score,
			})
		}
	}

	return questions, nil
}

// Save persists a catalog question
func (r *QuestionRepository) Save(ctx context.Context, question personality.Question) error {
	item := questionItem{
		PK:         fmt.Sprintf("QUESTION#%s", question.ID),
		SK:         "METADATA",
		EntityType: "QUESTION",
		QuestionID: question.ID,
		Category:   string(question.Category),
		Score:      question.Score,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save question",
			zap.String("questionID", question.ID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save question: %w", err)
	}

	return nil
}
