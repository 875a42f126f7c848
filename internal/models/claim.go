package models

// ClaimEvent is published to Kafka after a successful daily quote claim.
type ClaimEvent struct {
	ClaimID     string `json:"claim_id"`     // Unique event identifier
	UserID      string `json:"user_id"`      // Owning user identifier
	Username    string `json:"username"`     // Username at claim time
	Author      string `json:"author"`       // Author of the claimed quote
	RetrievedOn string `json:"retrieved_on"` // Claim date, YYYY-MM-DD
	Timestamp   int64  `json:"timestamp"`    // Unix timestamp of the event
}
