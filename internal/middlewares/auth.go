package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/sessions"
)

// SessionResolver defines the minimal session interface needed by the middleware.
type SessionResolver interface {
	Resolve(ctx context.Context, tokenString string) (sessionID, username string, err error)
}

type sessionIDKey struct{}
type usernameKey struct{}

// SessionMiddleware returns a middleware that requires an authenticated
// session. A request without one is not an error: it is silently redirected
// to the welcome page.
func SessionMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := sessions.TokenFromRequest(r)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			sessionID, username, err := resolver.Resolve(ctx, token)
			if err != nil {
				if !errors.Is(err, sessions.ErrNoSession) {
					logger.Log.Errorw("session resolution failed", "err", err)
				}
				sessions.ClearCookie(w)
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, sessionID, username)))
		})
	}
}

// WithSession attaches the session ID and username to the context.
func WithSession(ctx context.Context, sessionID, username string) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey{}, sessionID)
	return context.WithValue(ctx, usernameKey{}, username)
}

// SessionIDFromContext returns the session ID set by SessionMiddleware, or "".
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// UsernameFromContext returns the authenticated username set by
// SessionMiddleware, or "".
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey{}).(string)
	return username
}
