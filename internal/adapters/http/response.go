package http

import (
	"encoding/json"
	"net/http"

	"github.com/mergington/activities/internal/contracts"
	"github.com/mergington/activities/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, contracts.MessageResponse{Message: message})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, contracts.ErrorResponse{Detail: detail})
}

// mapDomainError translates a domain error to the HTTP status and the exact
// detail string clients of this API parse.
func mapDomainError(err error) (int, string) {
	switch err {
	case nil:
		return http.StatusOK, ""
	case domain.ErrActivityNotFound:
		return http.StatusNotFound, "Activity not found"
	case domain.ErrAlreadyRegistered:
		return http.StatusBadRequest, "Student already signed up for this activity"
	case domain.ErrNotRegistered:
		return http.StatusBadRequest, "Student not signed up for this activity"
	case domain.ErrInvalidInput:
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
