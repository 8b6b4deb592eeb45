package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"personality-backend/application/commands"
	"personality-backend/application/commands/bus"
	"personality-backend/application/ports"
	"personality-backend/domain/personality"
	apperrors "personality-backend/pkg/errors"
)

var validate = validator.New()

// QuestionHandler serves the scoring-question catalog
type QuestionHandler struct {
	commandBus *bus.CommandBus
	catalog    ports.QuestionCatalog
	logger     *zap.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(commandBus *bus.CommandBus, catalog ports.QuestionCatalog, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		commandBus: commandBus,
		catalog:    catalog,
		logger:     logger,
	}
}

// QuestionResponse is the catalog question wire format
type QuestionResponse struct {
	QuestionID string `json:"questionId"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
}

// CreateQuestionRequest is the request body for catalog administration
type CreateQuestionRequest struct {
	QuestionID string `json:"questionId"`
	Category   string `json:"category" validate:"required,oneof=EI SN TF JP"`
	Score      int    `json:"score" validate:"required,oneof=-1 1"`
}

// ListQuestions returns the full question catalog
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalog.ScanAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to list questions", zap.Error(err))
		respondAppError(w, apperrors.NewInternalError("failed to list questions"))
		return
	}

	response := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		response = append(response, QuestionResponse{
			QuestionID: q.ID,
			Category:   string(q.Category),
			Score:      q.Score,
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": response,
		"count":     len(response),
	})
}

// CreateQuestion adds a question to the catalog
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondAppError(w, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondAppError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.CreateQuestionCommand{
		QuestionID: req.QuestionID,
		Category:   personality.Axis(req.Category),
		Score:      req.Score,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create question", zap.Error(err))
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}
