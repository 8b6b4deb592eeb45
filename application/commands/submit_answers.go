package commands

import (
	"personality-backend/domain/personality"
	"personality-backend/pkg/errors"
)

// SubmitAnswersCommand stores a user's raw questionnaire answers. Scoring
// happens asynchronously off the submission table's change stream.
type SubmitAnswersCommand struct {
	UserID  string
	Answers []personality.Answer
}

// Validate checks the command for required fields
func (c SubmitAnswersCommand) Validate() error {
	if c.UserID == "" {
		return errors.NewValidationError("user ID is required")
	}
	if len(c.Answers) == 0 {
		return errors.NewValidationError("at least one answer is required")
	}
	for _, ans := range c.Answers {
		if ans.QuestionID == "" {
			return errors.NewValidationError("answer is missing a question ID")
		}
	}
	return nil
}
