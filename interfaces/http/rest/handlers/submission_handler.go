package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"personality-backend/application/commands"
	"personality-backend/application/commands/bus"
	"personality-backend/domain/personality"
	"personality-backend/interfaces/http/rest/middleware"
	apperrors "personality-backend/pkg/errors"
)

// SubmissionHandler accepts raw questionnaire answers. Scoring is
// asynchronous: the submission write feeds the change stream that
// triggers the score processor.
type SubmissionHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(commandBus *bus.CommandBus, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// AnswerRequest is one answer in a submission body
type AnswerRequest struct {
	QuestionID string  `json:"questionId" validate:"required"`
	Answer     float64 `json:"answer"`
}

// SubmitAnswersRequest is the submission request body
type SubmitAnswersRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

// SubmitAnswers stores the authenticated user's answer set
func (h *SubmissionHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		respondAppError(w, apperrors.NewUnauthorizedError(""))
		return
	}

	var req SubmitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondAppError(w, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondAppError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	answers := make([]personality.Answer, 0, len(req.Answers))
	for _, ans := range req.Answers {
		answers = append(answers, personality.Answer{
			QuestionID: ans.QuestionID,
			Value:      ans.Answer,
		})
	}

	cmd := commands.SubmitAnswersCommand{
		UserID:  userID,
		Answers: answers,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to store submission",
			zap.String("userID", userID),
			zap.Error(err),
		)
		respondAppError(w, err)
		return
	}

	// Scoring happens off the change stream; the client polls the
	// profile endpoint for the result.
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
}
