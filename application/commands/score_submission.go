package commands

import (
	"personality-backend/domain/personality"
	"personality-backend/pkg/errors"
)

// ScoreSubmissionCommand carries one user's answer set to the scoring
// handler. The reactor builds one command per relevant stream record.
type ScoreSubmissionCommand struct {
	UserID  string
	Answers []personality.Answer
}

// Validate checks the command for required fields
func (c ScoreSubmissionCommand) Validate() error {
	if c.UserID == "" {
		return errors.NewMalformedEventError("missing user ID")
	}
	if c.Answers == nil {
		return errors.NewMalformedEventError("missing answers")
	}
	return nil
}
