package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/models"
)

// dateLayout is the wire format for the retrieved_on DATE column.
const dateLayout = "2006-01-02"

type QuoteHistoryReadRepository struct {
	db *sqlx.DB
}

func NewQuoteHistoryReadRepository(db *sqlx.DB) *QuoteHistoryReadRepository {
	return &QuoteHistoryReadRepository{db: db}
}

// GetByUserAndDate returns the entry claimed by the user on the given calendar
// day, or nil if the user has not claimed a quote that day.
func (r *QuoteHistoryReadRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, day time.Time) (*models.QuoteHistoryDB, error) {
	const query = `
		SELECT quote_id, user_id, quote_text, author, retrieved_on, created_at
		FROM quote_history
		WHERE user_id = $1 AND retrieved_on = $2
		LIMIT 1
	`

	var entry models.QuoteHistoryDB
	err := r.db.GetContext(ctx, &entry, query, userID, day.Format(dateLayout))

	logger.Log.Debugw("quote history select",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"day", day.Format(dateLayout),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListByUser returns all entries of the user, newest first.
func (r *QuoteHistoryReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.QuoteHistoryDB, error) {
	const query = `
		SELECT quote_id, user_id, quote_text, author, retrieved_on, created_at
		FROM quote_history
		WHERE user_id = $1
		ORDER BY retrieved_on DESC, created_at DESC
	`

	entries := []models.QuoteHistoryDB{}
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Debugw("quote history list",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"count", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}

type QuoteHistoryWriteRepository struct {
	db *sqlx.DB
}

func NewQuoteHistoryWriteRepository(db *sqlx.DB) *QuoteHistoryWriteRepository {
	return &QuoteHistoryWriteRepository{db: db}
}

// Save appends an entry for the user and day. The (user_id, retrieved_on)
// unique constraint resolves concurrent claims: the losing insert affects no
// rows and Save returns nil without error, which callers treat as
// already-claimed.
func (r *QuoteHistoryWriteRepository) Save(ctx context.Context, userID uuid.UUID, quoteText, author string, day time.Time) (*models.QuoteHistoryDB, error) {
	const query = `
		INSERT INTO quote_history (user_id, quote_text, author, retrieved_on, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, retrieved_on) DO NOTHING
		RETURNING quote_id, user_id, quote_text, author, retrieved_on, created_at
	`
	args := []any{userID, quoteText, author, day.Format(dateLayout)}

	var entry models.QuoteHistoryDB
	err := r.db.GetContext(ctx, &entry, query, args...)

	logger.Log.Debugw("quote history insert",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"day", day.Format(dateLayout),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
