package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/middlewares"
	"github.com/sbilibin2017/daily-quote/internal/sessions"
)

// SessionDestroyer revokes a session server-side.
type SessionDestroyer interface {
	Destroy(ctx context.Context, sessionID string) error
}

// NewLogoutHandler returns an HTTP handler that ends the session.
// @Summary Log out
// @Description Revokes the session and clears the session cookie.
// @Tags auth
// @Produce html
// @Success 302 {string} string "Redirect to /"
// @Router /logout [get]
func NewLogoutHandler(sess SessionDestroyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := middlewares.SessionIDFromContext(ctx)

		if err := sess.Destroy(ctx, sessionID); err != nil {
			logger.Log.Errorw("failed to destroy session", "err", err)
		}

		sessions.ClearCookie(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
