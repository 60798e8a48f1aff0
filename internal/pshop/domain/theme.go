package domain

import "time"

// Theme holds one user's color customisation. One record per user, upserted.
type Theme struct {
	UserID    string            `json:"-"`
	Colors    map[string]string `json:"colors"`
	Mode      string            `json:"mode"` // "light" or "dark"
	UpdatedAt time.Time         `json:"-"`
}
