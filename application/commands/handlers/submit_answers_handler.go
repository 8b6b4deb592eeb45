package handlers

import (
	"context"
	"fmt"
	"time"

	"personality-backend/application/commands"
	"personality-backend/application/ports"
	"personality-backend/domain/personality"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitAnswersHandler stores a user's raw answer set. It never scores
// inline: the submission table's change stream drives scoring.
type SubmitAnswersHandler struct {
	submissions ports.SubmissionStore
	logger      *zap.Logger
}

// NewSubmitAnswersHandler creates a new submit answers handler
func NewSubmitAnswersHandler(submissions ports.SubmissionStore, logger *zap.Logger) *SubmitAnswersHandler {
	return &SubmitAnswersHandler{
		submissions: submissions,
		logger:      logger,
	}
}

// Handle executes the submit answers command
func (h *SubmitAnswersHandler) Handle(ctx context.Context, cmd commands.SubmitAnswersCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	submission := personality.Submission{
		ID:          uuid.New().String(),
		UserID:      cmd.UserID,
		Answers:     cmd.Answers,
		SubmittedAt: time.Now().UTC(),
	}

	if err := h.submissions.Save(ctx, submission); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	h.logger.Info("Stored answer submission",
		zap.String("submissionID", submission.ID),
		zap.String("userID", cmd.UserID),
		zap.Int("answerCount", len(cmd.Answers)),
	)

	return nil
}
