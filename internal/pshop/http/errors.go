package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/pkg/httpx"
)

// writeServiceError maps service sentinels onto the response envelope.
// Anything unrecognised is reported as a generic internal error so store
// details never leak to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.Error(w, http.StatusBadRequest, httpx.ErrKindValidation, "Missing or invalid fields")
	case errors.Is(err, service.ErrUsernameTooShort):
		httpx.Error(w, http.StatusBadRequest, httpx.ErrKindTooShort, "Username must be at least 3 characters")
	case errors.Is(err, service.ErrPasswordTooShort):
		httpx.Error(w, http.StatusBadRequest, httpx.ErrKindTooShort, "Password must be at least 6 characters")
	case errors.Is(err, service.ErrForbidden):
		httpx.Error(w, http.StatusUnauthorized, httpx.ErrKindForbidden, "Invalid admin code")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.Error(w, http.StatusUnauthorized, httpx.ErrKindInvalidCredentials, "Invalid username or password")
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.Error(w, http.StatusBadRequest, httpx.ErrKindConflict, "Username already taken")
	case errors.Is(err, service.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, httpx.ErrKindNotFound, "Resource not found")
	case errors.Is(err, service.ErrPayloadTooLarge):
		httpx.Error(w, http.StatusBadRequest, httpx.ErrKindPayloadTooLarge, "Photos payload too large")
	case errors.Is(err, service.ErrUnauthenticated):
		httpx.Error(w, http.StatusUnauthorized, httpx.ErrKindUnauthenticated, "Invalid or expired session")
	default:
		httpx.Error(w, http.StatusInternalServerError, httpx.ErrKindInternal, "An internal error occurred")
	}
}

func writeBadJSON(w http.ResponseWriter) {
	httpx.Error(w, http.StatusBadRequest, httpx.ErrKindValidation, "Request body must be valid JSON")
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	httpx.Error(w, http.StatusMethodNotAllowed, httpx.ErrKindMethodNotAllowed, "Method not allowed")
}

// decodeJSON decodes a request body into a typed struct, rejecting fields
// the endpoint does not know about.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// parseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
