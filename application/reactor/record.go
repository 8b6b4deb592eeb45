package reactor

import (
	awsevents "github.com/aws/aws-lambda-go/events"

	"personality-backend/application/commands"
	"personality-backend/domain/personality"
	"personality-backend/pkg/errors"
)

// Submission item attribute names as they appear in stream images.
const (
	attrUserID     = "UserID"
	attrAnswers    = "Answers"
	attrQuestionID = "QuestionID"
	attrValue      = "Value"
)

// CommandFromRecord extracts a scoring command from a stream record's new
// image. A record without a usable image, user ID or answer list is
// malformed; individual answer entries that don't parse are dropped, the
// same way the scorer tolerates catalog drift.
func CommandFromRecord(record awsevents.DynamoDBEventRecord) (commands.ScoreSubmissionCommand, error) {
	var cmd commands.ScoreSubmissionCommand

	image := record.Change.NewImage
	if len(image) == 0 {
		return cmd, errors.NewMalformedEventError("record has no new image")
	}

	userAttr, ok := image[attrUserID]
	if !ok || userAttr.DataType() != awsevents.DataTypeString || userAttr.String() == "" {
		return cmd, errors.NewMalformedEventError("record is missing user ID")
	}

	answersAttr, ok := image[attrAnswers]
	if !ok || answersAttr.DataType() != awsevents.DataTypeList {
		return cmd, errors.NewMalformedEventError("record is missing answer list")
	}

	entries := answersAttr.List()
	answers := make([]personality.Answer, 0, len(entries))
	for _, entry := range entries {
		if entry.DataType() != awsevents.DataTypeMap {
			continue
		}
		fields := entry.Map()

		questionAttr, ok := fields[attrQuestionID]
		if !ok || questionAttr.DataType() != awsevents.DataTypeString {
			continue
		}
		valueAttr, ok := fields[attrValue]
		if !ok || valueAttr.DataType() != awsevents.DataTypeNumber {
			continue
		}
		value, err := valueAttr.Float()
		if err != nil {
			continue
		}

		answers = append(answers, personality.Answer{
			QuestionID: questionAttr.String(),
			Value:      value,
		})
	}

	cmd.UserID = userAttr.String()
	cmd.Answers = answers
	return cmd, nil
}

// relevant reports whether the record kind triggers scoring.
func relevant(record awsevents.DynamoDBEventRecord) bool {
	switch record.EventName {
	case string(awsevents.DynamoDBOperationTypeInsert), string(awsevents.DynamoDBOperationTypeModify):
		return true
	}
	return false
}
