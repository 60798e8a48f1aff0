package httpx

import (
	"encoding/json"
	"net/http"
)

// Stable error kinds carried in the response envelope. Clients branch on
// these rather than on the human-readable message.
const (
	ErrKindValidation         = "validation"
	ErrKindTooShort           = "too_short"
	ErrKindForbidden          = "forbidden"
	ErrKindInvalidCredentials = "invalid_credentials"
	ErrKindConflict           = "conflict"
	ErrKindNotFound           = "not_found"
	ErrKindPayloadTooLarge    = "payload_too_large"
	ErrKindUnauthenticated    = "unauthenticated"
	ErrKindMethodNotAllowed   = "method_not_allowed"
	ErrKindRateLimited        = "rate_limited"
	ErrKindInternal           = "internal"
)

// Envelope is the uniform JSON response shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a successful envelope carrying data.
func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage writes a successful envelope with a message and optional data.
func OKMessage(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Error writes a failed envelope with a stable error kind and a
// human-readable message.
func Error(w http.ResponseWriter, code int, kind, message string) {
	WriteJSON(w, code, Envelope{Success: false, Error: kind, Message: message})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
