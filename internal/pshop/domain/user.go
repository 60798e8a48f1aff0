package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"` // stored lower-cased, unique
	Name         string    `json:"name"`     // display name shown in the UI
	PasswordHash string    `json:"-"`        // argon2id encoded
	CreatedAt    time.Time `json:"createdAt"`
}
