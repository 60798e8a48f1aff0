package http

import (
	"net/http"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/pkg/httpx"
)

type ProductsHandler struct {
	InventoryService *service.InventoryService
}

type productRequest struct {
	ID             string            `json:"id,omitempty"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	PartnerPrice   float64           `json:"partnerPrice"`
	ResalePrice    float64           `json:"resalePrice"`
	Margin         float64           `json:"margin"` // accepted for compatibility, recomputed server-side
	Stock          int               `json:"stock"`
	Photos         []string          `json:"photos"`
	Specifications map[string]string `json:"specifications"`
}

func (req productRequest) toDomain() domain.Product {
	return domain.Product{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		PartnerPrice: req.PartnerPrice,
		ResalePrice:  req.ResalePrice,
		Stock:        req.Stock,
		Photos:       req.Photos,
		Specs:        req.Specifications,
	}
}

func (h *ProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		if id := r.URL.Query().Get("id"); id != "" {
			h.handleGet(w, r, userID, id)
			return
		}
		h.handleList(w, r, userID)
	case http.MethodPost:
		h.handleCreate(w, r, userID)
	case http.MethodPut:
		h.handleUpdate(w, r, userID)
	case http.MethodDelete:
		h.handleDelete(w, r, userID)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *ProductsHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	products, err := h.InventoryService.ListProducts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w, products)
}

func (h *ProductsHandler) handleGet(w http.ResponseWriter, r *http.Request, userID, id string) {
	product, err := h.InventoryService.GetProduct(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w, product)
}

func (h *ProductsHandler) handleCreate(w http.ResponseWriter, r *http.Request, userID string) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	product, err := h.InventoryService.CreateProduct(r.Context(), userID, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Product created", product)
}

func (h *ProductsHandler) handleUpdate(w http.ResponseWriter, r *http.Request, userID string) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	if req.ID == "" {
		req.ID = r.URL.Query().Get("id")
	}

	product, err := h.InventoryService.UpdateProduct(r.Context(), userID, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Product updated", product)
}

func (h *ProductsHandler) handleDelete(w http.ResponseWriter, r *http.Request, userID string) {
	id := r.URL.Query().Get("id")
	if err := h.InventoryService.DeleteProduct(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Product deleted", nil)
}
