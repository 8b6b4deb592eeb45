package reactor

import (
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personality-backend/domain/personality"
	apperrors "personality-backend/pkg/errors"
)

func TestCommandFromRecord_ExtractsAnswers(t *testing.T) {
	record := submissionRecord("INSERT", "user-1",
		answerEntry("q1", "2"),
		answerEntry("q2", "-1.5"),
	)

	cmd, err := CommandFromRecord(record)

	require.NoError(t, err)
	assert.Equal(t, "user-1", cmd.UserID)
	assert.Equal(t, []personality.Answer{
		{QuestionID: "q1", Value: 2},
		{QuestionID: "q2", Value: -1.5},
	}, cmd.Answers)
}

func TestCommandFromRecord_NoNewImage(t *testing.T) {
	record := awsevents.DynamoDBEventRecord{
		EventName: "MODIFY",
		Change:    awsevents.DynamoDBStreamRecord{},
	}

	_, err := CommandFromRecord(record)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeMalformedEvent, apperrors.TypeOf(err))
}

func TestCommandFromRecord_MissingUserID(t *testing.T) {
	record := awsevents.DynamoDBEventRecord{
		EventName: "INSERT",
		Change: awsevents.DynamoDBStreamRecord{
			NewImage: map[string]awsevents.DynamoDBAttributeValue{
				"Answers": awsevents.NewListAttribute(nil),
			},
		},
	}

	_, err := CommandFromRecord(record)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeMalformedEvent, apperrors.TypeOf(err))
}

func TestCommandFromRecord_MissingAnswerList(t *testing.T) {
	record := awsevents.DynamoDBEventRecord{
		EventName: "INSERT",
		Change: awsevents.DynamoDBStreamRecord{
			NewImage: map[string]awsevents.DynamoDBAttributeValue{
				"UserID": awsevents.NewStringAttribute("user-1"),
			},
		},
	}

	_, err := CommandFromRecord(record)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeMalformedEvent, apperrors.TypeOf(err))
}

func TestCommandFromRecord_DropsUnparseableEntries(t *testing.T) {
	record := submissionRecord("INSERT", "user-1",
		answerEntry("q1", "1"),
		awsevents.NewStringAttribute("not a map"),
		awsevents.NewMapAttribute(map[string]awsevents.DynamoDBAttributeValue{
			"QuestionID": awsevents.NewStringAttribute("q2"),
			// Value missing entirely
		}),
	)

	cmd, err := CommandFromRecord(record)

	require.NoError(t, err)
	assert.Equal(t, []personality.Answer{{QuestionID: "q1", Value: 1}}, cmd.Answers)
}

func TestCommandFromRecord_EmptyAnswerListIsValid(t *testing.T) {
	record := submissionRecord("MODIFY", "user-1")

	cmd, err := CommandFromRecord(record)

	require.NoError(t, err)
	assert.Equal(t, "user-1", cmd.UserID)
	assert.Empty(t, cmd.Answers)
	assert.NoError(t, cmd.Validate())
}

func TestRelevant(t *testing.T) {
	assert.True(t, relevant(awsevents.DynamoDBEventRecord{EventName: "INSERT"}))
	assert.True(t, relevant(awsevents.DynamoDBEventRecord{EventName: "MODIFY"}))
	assert.False(t, relevant(awsevents.DynamoDBEventRecord{EventName: "REMOVE"}))
	assert.False(t, relevant(awsevents.DynamoDBEventRecord{EventName: ""}))
}
