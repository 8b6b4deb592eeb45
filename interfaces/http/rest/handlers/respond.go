package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "personality-backend/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondAppError maps an error chain onto an HTTP response, using the
// AppError status when one is present.
func respondAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		respondJSON(w, appErr.HTTPStatus, map[string]string{
			"error": appErr.Message,
			"type":  string(appErr.Type),
		})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
