package handlers

import (
	"context"
	"fmt"

	"personality-backend/application/commands"
	"personality-backend/application/ports"
	"personality-backend/domain/personality"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateQuestionHandler adds questions to the scoring catalog.
type CreateQuestionHandler struct {
	catalog ports.QuestionCatalog
	logger  *zap.Logger
}

// NewCreateQuestionHandler creates a new create question handler
func NewCreateQuestionHandler(catalog ports.QuestionCatalog, logger *zap.Logger) *CreateQuestionHandler {
	return &CreateQuestionHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle executes the create question command
func (h *CreateQuestionHandler) Handle(ctx context.Context, cmd commands.CreateQuestionCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	question := personality.Question{
		ID:       cmd.QuestionID,
		Category: cmd.Category,
		Score:    cmd.Score,
	}
	if question.ID == "" {
		question.ID = uuid.New().String()
	}

	if err := h.catalog.Save(ctx, question); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	h.logger.Info("Saved catalog question",
		zap.String("questionID", question.ID),
		zap.String("category", string(question.Category)),
	)

	return nil
}
