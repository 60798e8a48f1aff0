package domain

import "time"

type Sale struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ProductID   *string   `json:"productId"` // nil when the product was deleted or never linked
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Total       float64   `json:"total"`
	Profit      float64   `json:"profit"`
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	SaleDate    time.Time `json:"saleDate"`
	CreatedAt   time.Time `json:"createdAt"`
}
