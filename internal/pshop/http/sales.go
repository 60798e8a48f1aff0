package http

import (
	"net/http"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/pkg/httpx"
)

type SalesHandler struct {
	SalesService *service.SalesService
}

type saleRequest struct {
	ProductID   *string `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`  // recomputed server-side
	Profit      float64 `json:"profit"` // used only when the product no longer exists
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	SaleDate    string  `json:"saleDate"`
}

func (h *SalesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, userID)
	case http.MethodPost:
		h.handleCreate(w, r, userID)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *SalesHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	sales, err := h.SalesService.ListSales(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w, sales)
}

func (h *SalesHandler) handleCreate(w http.ResponseWriter, r *http.Request, userID string) {
	var req saleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	sale := domain.Sale{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Profit:      req.Profit,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	}
	if d, ok := parseDate(req.SaleDate); ok {
		sale.SaleDate = d
	}

	created, err := h.SalesService.CreateSale(r.Context(), userID, sale)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Sale recorded", created)
}
