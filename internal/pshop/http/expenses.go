package http

import (
	"net/http"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/pkg/httpx"
)

type ExpensesHandler struct {
	ExpenseService *service.ExpenseService
}

type expenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expenseDate"`
}

func (h *ExpensesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, userID)
	case http.MethodPost:
		h.handleCreate(w, r, userID)
	case http.MethodDelete:
		h.handleDelete(w, r, userID)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *ExpensesHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	expenses, err := h.ExpenseService.ListExpenses(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w, expenses)
}

func (h *ExpensesHandler) handleCreate(w http.ResponseWriter, r *http.Request, userID string) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	expense := domain.Expense{
		Amount:      req.Amount,
		Category:    req.Category,
		Supplier:    req.Supplier,
		Description: req.Description,
	}
	if d, ok := parseDate(req.ExpenseDate); ok {
		expense.ExpenseDate = d
	}

	created, err := h.ExpenseService.CreateExpense(r.Context(), userID, expense)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Expense recorded", created)
}

func (h *ExpensesHandler) handleDelete(w http.ResponseWriter, r *http.Request, userID string) {
	id := r.URL.Query().Get("id")
	if err := h.ExpenseService.DeleteExpense(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Expense deleted", nil)
}
