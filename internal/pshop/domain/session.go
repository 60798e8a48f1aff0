package domain

import "time"

// Session is an opaque bearer token bound to a user for a fixed window.
// The token itself is the primary key; it never leaves the database in any
// derived form.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"` // denormalized snapshot at creation
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Valid reports whether the session has not yet expired at t.
func (s Session) Valid(t time.Time) bool {
	return t.Before(s.ExpiresAt)
}
