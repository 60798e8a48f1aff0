package service

import "errors"

// Shared sentinels surfaced by more than one service. Handlers map these to
// envelope error kinds and HTTP status codes.
var (
	ErrValidation      = errors.New("missing or invalid fields")
	ErrNotFound        = errors.New("resource not found")
	ErrPayloadTooLarge = errors.New("payload too large")
)
