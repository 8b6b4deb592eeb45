package commands

import (
	"personality-backend/domain/personality"
	"personality-backend/pkg/errors"
)

// CreateQuestionCommand adds one question to the scoring catalog.
type CreateQuestionCommand struct {
	QuestionID string
	Category   personality.Axis
	Score      int
}

// Validate checks the command for required fields
func (c CreateQuestionCommand) Validate() error {
	if !c.Category.IsValid() {
		return errors.NewValidationError("category must be one of EI, SN, TF, JP")
	}
	if c.Score != 1 && c.Score != -1 {
		return errors.NewValidationError("score must be +1 or -1")
	}
	return nil
}
