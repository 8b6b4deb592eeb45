package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"personality-backend/application/ports"
	"personality-backend/interfaces/http/rest/middleware"
	apperrors "personality-backend/pkg/errors"
)

// ProfileHandler serves computed classifications
type ProfileHandler struct {
	profiles ports.ProfileStore
	logger   *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles ports.ProfileStore, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// PersonalityResponse is the classification wire format
type PersonalityResponse struct {
	PersonalityType       string             `json:"personalityType"`
	PersonalityTestStatus string             `json:"personalityTestStatus"`
	AxisRatios            map[string]float64 `json:"axisRatios"`
}

// GetPersonality returns the user's current classification. Users can
// only read their own result.
func (h *ProfileHandler) GetPersonality(w http.ResponseWriter, r *http.Request) {
	requester := middleware.GetUserID(r.Context())
	userID := chi.URLParam(r, "userID")

	if requester == "" || requester != userID {
		respondAppError(w, apperrors.NewUnauthorizedError("cannot read another user's result"))
		return
	}

	result, err := h.profiles.GetClassification(r.Context(), userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondAppError(w, err)
			return
		}
		h.logger.Error("Failed to get classification",
			zap.String("userID", userID),
			zap.Error(err),
		)
		respondAppError(w, apperrors.NewInternalError("failed to get classification"))
		return
	}

	ratios := make(map[string]float64, len(result.Ratios))
	for axis, ratio := range result.Ratios {
		ratios[string(axis)] = ratio
	}

	respondJSON(w, http.StatusOK, PersonalityResponse{
		PersonalityType:       result.PersonalityType,
		PersonalityTestStatus: result.Status,
		AxisRatios:            ratios,
	})
}
