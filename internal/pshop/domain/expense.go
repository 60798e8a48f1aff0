package domain

import "time"

type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Supplier    string    `json:"supplier"`
	Description string    `json:"description"`
	ExpenseDate time.Time `json:"expenseDate"`
	CreatedAt   time.Time `json:"createdAt"`
}
