package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError translates a domain failure into an HTTP status. Every sentinel
// of the service taxonomy has a stable mapping; anything unrecognized is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrInvalidCode):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotAMember),
		errors.Is(err, service.ErrNotAdmin),
		errors.Is(err, service.ErrSoleAdmin),
		errors.Is(err, service.ErrTargetNotMember):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrAlreadyReplied),
		errors.Is(err, service.ErrExpired):
		status = http.StatusConflict
	case errors.Is(err, service.ErrQuotaExceeded),
		errors.Is(err, service.ErrInvalidStatus):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrCodeGenerationFailed),
		errors.Is(err, service.ErrPartialFailure):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
