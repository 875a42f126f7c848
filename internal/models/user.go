package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`         // Primary key
	FirstName    string    `json:"first_name" db:"first_name"`   // First name
	MiddleName   *string   `json:"middle_name" db:"middle_name"` // Optional middle name
	LastName     string    `json:"last_name" db:"last_name"`     // Last name
	Username     string    `json:"username" db:"username"`       // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`         // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
