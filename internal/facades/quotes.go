package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/daily-quote/internal/logger"
)

// ErrProviderUnavailable is returned for any upstream failure: transport
// errors, non-OK status codes, and empty or malformed payloads.
var ErrProviderUnavailable = errors.New("quote provider unavailable")

// QuoteAPIFacade fetches quotes from the external quote HTTP API.
// The API returns a JSON list of objects with "quote" and "author" fields
// and is keyed by an X-Api-Key header.
type QuoteAPIFacade struct {
	client *http.Client
	apiURL string
	apiKey string
}

// NewQuoteAPIFacade creates a new facade. The client is expected to carry a
// request timeout so a hung upstream cannot pin a handler.
func NewQuoteAPIFacade(client *http.Client, apiURL, apiKey string) *QuoteAPIFacade {
	return &QuoteAPIFacade{client: client, apiURL: apiURL, apiKey: apiKey}
}

type quoteAPIItem struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// GetQuote performs a single call to the provider and returns the quote text
// and author. No retries: a failed attempt surfaces immediately.
func (f *QuoteAPIFacade) GetQuote(ctx context.Context) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("X-Api-Key", f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("quote provider request failed", "url", f.apiURL, "error", err)
		return "", "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("quote provider returned non-OK status", "url", f.apiURL, "status", resp.StatusCode)
		return "", "", fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var items []quoteAPIItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		logger.Log.Errorw("quote provider returned malformed payload", "url", f.apiURL, "error", err)
		return "", "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if len(items) == 0 || items[0].Quote == "" {
		logger.Log.Errorw("quote provider returned empty payload", "url", f.apiURL)
		return "", "", fmt.Errorf("%w: empty payload", ErrProviderUnavailable)
	}

	return items[0].Quote, items[0].Author, nil
}
