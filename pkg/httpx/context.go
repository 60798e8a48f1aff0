package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUsername ctxKey = "username"
	CtxKeyToken    ctxKey = "session_token"
)

// UserIDFromContext returns the authenticated user id set by the session
// middleware, or "" when the request is unauthenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UsernameFromContext returns the authenticated username, or "".
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// TokenFromContext returns the raw session token for the request, or "".
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyToken).(string); ok {
		return v
	}
	return ""
}
