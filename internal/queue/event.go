// Package queue defines message payloads exchanged over the message broker.
package queue

// UserDeletedEvent is published after a cascade account deletion commits.
// It carries enough context for downstream consumers to audit the removal
// without querying the primary database.
type UserDeletedEvent struct {
	UserID          uint64 `json:"user_id"`
	Email           string `json:"email"`
	ProductsRemoved int64  `json:"products_removed"`
	DeletedAt       string `json:"deleted_at"`
}
