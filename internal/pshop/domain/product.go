package domain

import "time"

type Product struct {
	ID           string            `json:"id"`
	UserID       string            `json:"userId"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	PartnerPrice float64           `json:"partnerPrice"`
	ResalePrice  float64           `json:"resalePrice"`
	Margin       float64           `json:"margin"` // resale - partner, recomputed server-side
	Stock        int               `json:"stock"`
	Photos       []string          `json:"photos"`         // image data strings, JSON column
	Specs        map[string]string `json:"specifications"` // free-form key/value, JSON column
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
