package handlers

import (
	"errors"
	"net/http"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/validate"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

// writeError maps the common service error classes onto envelope responses.
// Statuses a handler treats specially (ownership, conflicts, credentials)
// are handled before calling this.
func writeError(w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.FailValidation(w, verrs.Map())
	case errors.Is(err, models.ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, notFoundMsg, "")
	default:
		httpx.Fail(w, http.StatusInternalServerError, failMsg, err.Error())
	}
}
