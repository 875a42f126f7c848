package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/daily-quote/internal/facades"
	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/middlewares"
	"github.com/sbilibin2017/daily-quote/internal/models"
	"github.com/sbilibin2017/daily-quote/internal/services"
)

// QuoteClaimer claims the daily quote for a user.
type QuoteClaimer interface {
	Claim(ctx context.Context, username string, day time.Time) (*models.QuoteHistoryDB, error)
}

// FlashAdder queues a one-shot notice for a session.
type FlashAdder interface {
	AddFlash(ctx context.Context, sessionID, level, message string) error
}

// NewGetNewQuoteHandler returns an HTTP handler for claiming the daily quote.
// Every outcome redirects back to /home; failures only differ in the notice
// queued for the next page render. A provider failure creates no entry, so
// the user may retry immediately.
// @Summary Claim the daily quote
// @Description Fetches one quote from the provider and records it for today, at most once per day.
// @Tags quotes
// @Produce html
// @Success 302 {string} string "Redirect to /home"
// @Router /get_new_quote [get]
func NewGetNewQuoteHandler(svc QuoteClaimer, flashes FlashAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := middlewares.UsernameFromContext(ctx)
		sessionID := middlewares.SessionIDFromContext(ctx)

		_, err := svc.Claim(ctx, username, time.Now())
		switch {
		case err == nil:
			// Claimed: the home page shows the stored quote.
		case errors.Is(err, services.ErrAlreadyClaimedToday):
			addFlash(ctx, flashes, sessionID, "warning",
				"You have already received your daily quote. Please come back tomorrow!")
		case errors.Is(err, facades.ErrProviderUnavailable):
			addFlash(ctx, flashes, sessionID, "danger", "Error connecting to the quote service.")
		default:
			logger.Log.Errorw("failed to claim daily quote", "err", err)
			addFlash(ctx, flashes, sessionID, "danger", "System error occurred.")
		}

		http.Redirect(w, r, "/home", http.StatusFound)
	}
}

func addFlash(ctx context.Context, flashes FlashAdder, sessionID, level, message string) {
	if err := flashes.AddFlash(ctx, sessionID, level, message); err != nil {
		logger.Log.Errorw("failed to add flash", "err", err)
	}
}
