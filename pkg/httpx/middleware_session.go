package httpx

import (
	"context"
	"net/http"

	"github.com/pshophq/pshop/pkg/slogx"
)

// SessionVerifier resolves an opaque session token into the owning user.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (userID, username string, err error)
}

// TokenFromRequest extracts the session token from the sessionId query
// parameter or the X-Session-Id header, in that order.
func TokenFromRequest(r *http.Request) string {
	if token := r.URL.Query().Get("sessionId"); token != "" {
		return token
	}
	return r.Header.Get("X-Session-Id")
}

// SessionMiddleware gates a handler behind a valid session. On success the
// user id, username and raw token are injected into the request context.
func SessionMiddleware(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token := TokenFromRequest(r)
			if token == "" {
				Error(w, http.StatusUnauthorized, ErrKindUnauthenticated, "Session required")
				return
			}

			userID, username, err := v.VerifySession(ctx, token)
			if err != nil {
				log.Warn("session verification failed", "err", err)
				Error(w, http.StatusUnauthorized, ErrKindUnauthenticated, "Invalid or expired session")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeyUsername, username)
			ctx = context.WithValue(ctx, CtxKeyToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
