package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/banking-api/internal/commons"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps the service error taxonomy onto the HTTP
// contract: 404 (empty or with a field payload), 400 for malformed input,
// 422 for business-rule violations, 409 for commit conflicts, 500 for
// everything else.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	var validationErr *commons.ValidationError
	var ruleErr *commons.RuleViolationError
	var notFoundErr *commons.NotFoundError

	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		status = http.StatusNotFound
		w.WriteHeader(status)
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		writeJSON(w, status, commons.NewFieldErrors(notFoundErr.Field, notFoundErr.Message))
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		writeJSON(w, status, commons.NewFieldErrors(validationErr.Field, validationErr.Message))
	case errors.As(err, &ruleErr):
		status = http.StatusUnprocessableEntity
		writeJSON(w, status, commons.NewFieldErrors(ruleErr.Field, ruleErr.Message))
	case errors.Is(err, commons.ErrConcurrencyConflict):
		status = http.StatusConflict
		w.WriteHeader(status)
	default:
		logError(r, err, nil)
		w.WriteHeader(status)
	}

	logResponse(r, status, start)
}
