package http

import (
	"net/http"

	"github.com/pshophq/pshop/pkg/httpx"
)

// DataHandler fans /data?resource=... requests out to the per-resource
// handlers. Every request reaching it has already passed the session
// middleware, so handlers can rely on the user id in context.
type DataHandler struct {
	Products *ProductsHandler
	Sales    *SalesHandler
	Expenses *ExpensesHandler
	Theme    *ThemeHandler
	Stats    *StatsHandler
}

func (h *DataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("resource") {
	case "products":
		h.Products.ServeHTTP(w, r)
	case "sales":
		h.Sales.ServeHTTP(w, r)
	case "expenses":
		h.Expenses.ServeHTTP(w, r)
	case "theme":
		h.Theme.ServeHTTP(w, r)
	case "stats":
		h.Stats.ServeHTTP(w, r)
	default:
		httpx.Error(w, http.StatusBadRequest, httpx.ErrKindValidation, "Unknown resource")
	}
}
