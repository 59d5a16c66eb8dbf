package models

import "time"

// Notification is append-only: created by mutating operations, listed
// most-recent-first, deletable individually, never updated.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
