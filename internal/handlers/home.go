package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/middlewares"
	"github.com/sbilibin2017/daily-quote/internal/models"
	"github.com/sbilibin2017/daily-quote/internal/sessions"
	"github.com/sbilibin2017/daily-quote/internal/web"
)

// TodaysQuoteGetter returns the quote the user claimed today, or nil.
type TodaysQuoteGetter interface {
	TodaysQuote(ctx context.Context, username string, day time.Time) (*models.QuoteHistoryDB, error)
}

// FlashPopper drains queued one-shot notices for a session.
type FlashPopper interface {
	PopFlashes(ctx context.Context, sessionID string) ([]sessions.Flash, error)
}

// NewHomeHandler returns an HTTP handler for the dashboard.
// Whether the claim prompt or today's quote is shown is derived per request
// from the history store, never stored as state.
// @Summary Dashboard
// @Description Shows today's claimed quote, or the claim prompt if none exists yet.
// @Tags quotes
// @Produce html
// @Success 200 {string} string "Dashboard page"
// @Router /home [get]
func NewHomeHandler(svc TodaysQuoteGetter, flashes FlashPopper, pages *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := middlewares.UsernameFromContext(ctx)
		sessionID := middlewares.SessionIDFromContext(ctx)

		notices, err := flashes.PopFlashes(ctx, sessionID)
		if err != nil {
			logger.Log.Errorw("failed to pop flashes", "err", err)
		}

		entry, err := svc.TodaysQuote(ctx, username, time.Now())
		if err != nil {
			logger.Log.Errorw("failed to get todays quote", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		page := web.HomePage{
			Username:        username,
			ShowPlaceholder: entry == nil,
			Flashes:         notices,
		}
		if entry != nil {
			page.Quote = entry.QuoteText
			page.Author = entry.Author
		}

		pages.Render(w, "home.html", page)
	}
}
