package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"personality-backend/application/ports"
	"personality-backend/domain/personality"
)

// SubmissionRepository implements the SubmissionStore interface using
// DynamoDB. The table's change stream is what triggers scoring, so the
// item layout here is the contract the reactor's record extraction
// depends on.
type SubmissionRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.SubmissionStore {
	return &SubmissionRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// answerItem mirrors one entry of the Answers list attribute.
type answerItem struct {
	QuestionID string  `dynamodbav:"QuestionID"`
	Value      float64 `dynamodbav:"Value"`
}

// submissionItem represents the DynamoDB item structure for a submission.
// One item per user: a resubmission overwrites the previous answer set,
// which surfaces on the stream as a MODIFY event.
type submissionItem struct {
	PK           string       `dynamodbav:"PK"` // USER#<userID>
	SK           string       `dynamodbav:"SK"` // Always "SUBMISSION"
	EntityType   string       `dynamodbav:"EntityType"`
	SubmissionID string       `dynamodbav:"SubmissionID"`
	UserID       string       `dynamodbav:"UserID"`
	Answers      []answerItem `dynamodbav:"Answers"`
	SubmittedAt  string       `dynamodbav:"SubmittedAt"`
}

// Save persists a submission, replacing any previous one for the user
func (r *SubmissionRepository) Save(ctx context.Context, submission personality.Submission) error {
	answers := make([]answerItem, 0, len(submission.Answers))
	for _, ans := range submission.Answers {
		answers = append(answers, answerItem{
			QuestionID: ans.QuestionID,
			Value:      ans.Value,
		})
	}

	item := submissionItem{
		PK:           fmt.Sprintf("USER#%s", submission.UserID),
		SK:           "SUBMISSION",
		EntityType:   "SUBMISSION",
		SubmissionID: submission.ID,
		UserID:       submission.UserID,
		Answers:      answers,
		SubmittedAt:  submission.SubmittedAt.Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save submission",
			zap.String("submissionID", submission.ID),
			zap.String("userID", submission.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}
