package http

import (
	"errors"
	"net/http"

	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/pkg/httpx"
)

type ThemeHandler struct {
	ThemeService *service.ThemeService
}

type themeRequest struct {
	Colors map[string]string `json:"colors"`
	Mode   string            `json:"mode"`
}

func (h *ThemeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, userID)
	case http.MethodPost, http.MethodPut:
		h.handleSave(w, r, userID)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *ThemeHandler) handleGet(w http.ResponseWriter, r *http.Request, userID string) {
	theme, err := h.ThemeService.GetTheme(r.Context(), userID)
	if err != nil {
		// Never-saved theme means the client uses its defaults.
		if errors.Is(err, service.ErrNotFound) {
			httpx.OK(w, nil)
			return
		}
		writeServiceError(w, err)
		return
	}
	httpx.OK(w, theme)
}

func (h *ThemeHandler) handleSave(w http.ResponseWriter, r *http.Request, userID string) {
	var req themeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	theme, err := h.ThemeService.SaveTheme(r.Context(), userID, req.Colors, req.Mode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Theme saved", theme)
}
