package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/middlewares"
	"github.com/sbilibin2017/daily-quote/internal/models"
	"github.com/sbilibin2017/daily-quote/internal/web"
)

// HistoryLister returns all quotes a user has claimed, newest first.
type HistoryLister interface {
	History(ctx context.Context, username string) ([]models.QuoteHistoryDB, error)
}

// NewPreviousQuotesHandler returns an HTTP handler for the history listing.
// @Summary Previous quotes
// @Description Lists the authenticated user's claimed quotes, newest first.
// @Tags quotes
// @Produce html
// @Success 200 {string} string "History page"
// @Router /previous_quotes [get]
func NewPreviousQuotesHandler(svc HistoryLister, pages *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := middlewares.UsernameFromContext(ctx)

		entries, err := svc.History(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to list previous quotes", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		pages.Render(w, "previous_quotes.html", web.HistoryPage{
			Username: username,
			Entries:  entries,
		})
	}
}
