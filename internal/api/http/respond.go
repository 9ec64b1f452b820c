package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps each expected failure class to a status code. Anything
// unexpected becomes an opaque 500 so storage details never leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPeriodNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrBidNotFound),
		errors.Is(err, domain.ErrSalaryNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSupplierNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicatePeriod),
		errors.Is(err, domain.ErrDuplicateBid),
		errors.Is(err, domain.ErrRequestNotOpen),
		errors.Is(err, domain.ErrRequestClosed),
		errors.Is(err, domain.ErrDeadlinePassed),
		errors.Is(err, domain.ErrDeadlineNotReached),
		errors.Is(err, domain.ErrSupplierHasNoBid),
		errors.Is(err, domain.ErrSalaryFinalized):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}
