package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteHistoryDB represents one claimed quote in the database.
// Rows are append-only: they are written once by the claim flow and never
// updated or deleted.
type QuoteHistoryDB struct {
	QuoteID     uuid.UUID `json:"quote_id" db:"quote_id"`         // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owning user
	QuoteText   string    `json:"quote_text" db:"quote_text"`     // Quote text from the provider
	Author      string    `json:"author" db:"author"`             // Quote author from the provider
	RetrievedOn time.Time `json:"retrieved_on" db:"retrieved_on"` // Calendar date the quote was claimed
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Insertion timestamp
}
