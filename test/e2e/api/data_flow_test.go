package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv.URL, "alice", "secret123")

	id := createProduct(t, srv.URL, token, map[string]any{
		"name":         "Perfume X",
		"partnerPrice": 60,
		"resalePrice":  100,
		"stock":        5,
		"margin":       9999,
	})

	t.Run("get recomputes margin", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products", "id="+id), token, nil)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Name   string  `json:"name"`
			Margin float64 `json:"margin"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Equal(t, "Perfume X", data.Name)
		require.Equal(t, float64(40), data.Margin)
	})

	t.Run("update", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPut, dataURL(srv.URL, "products", "id="+id), token, map[string]any{
			"name":         "Perfume X Deluxe",
			"partnerPrice": 60,
			"resalePrice":  120,
			"stock":        5,
		})
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Name   string  `json:"name"`
			Margin float64 `json:"margin"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Equal(t, "Perfume X Deluxe", data.Name)
		require.Equal(t, float64(60), data.Margin)
	})

	t.Run("list", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products"), token, nil)
		require.Equal(t, http.StatusOK, status)

		var data []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data, 1)
	})

	t.Run("delete", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodDelete, dataURL(srv.URL, "products", "id="+id), token, nil)
		require.Equal(t, http.StatusOK, status)

		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products", "id="+id), token, nil)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "not_found", env.Error)
	})
}

func TestSaleAdjustsInventory(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv.URL, "alice", "secret123")

	id := createProduct(t, srv.URL, token, map[string]any{
		"name":         "Perfume X",
		"partnerPrice": 60,
		"resalePrice":  100,
		"stock":        10,
	})

	status, env := doJSON(t, http.MethodPost, dataURL(srv.URL, "sales"), token, map[string]any{
		"productId":   id,
		"productName": "Perfume X",
		"quantity":    3,
		"unitPrice":   100,
		"total":       1, // recomputed server-side
		"profit":      1, // replaced by the product margin
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var sale struct {
		Total  float64 `json:"total"`
		Profit float64 `json:"profit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sale))
	require.Equal(t, float64(300), sale.Total)
	require.Equal(t, float64(120), sale.Profit)

	_, env = doJSON(t, http.MethodGet, dataURL(srv.URL, "products", "id="+id), token, nil)
	var product struct {
		Stock int `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	require.Equal(t, 7, product.Stock)
}

func TestExpenseLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv.URL, "alice", "secret123")

	status, env := doJSON(t, http.MethodPost, dataURL(srv.URL, "expenses"), token, map[string]any{
		"amount":   50,
		"category": "Packaging",
		"supplier": "BoxCo",
	})
	require.Equal(t, http.StatusOK, status)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	status, env = doJSON(t, http.MethodGet, dataURL(srv.URL, "expenses"), token, nil)
	require.Equal(t, http.StatusOK, status)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)

	status, _ = doJSON(t, http.MethodDelete, dataURL(srv.URL, "expenses", "id="+created.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, http.MethodDelete, dataURL(srv.URL, "expenses", "id="+created.ID), token, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "not_found", env.Error)
}

func TestThemeRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv.URL, "alice", "secret123")

	t.Run("empty data before first save", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "theme"), token, nil)
		require.Equal(t, http.StatusOK, status)
		require.True(t, env.Success)
		require.Empty(t, env.Data, "no saved theme means client defaults")
	})

	status, _ := doJSON(t, http.MethodPost, dataURL(srv.URL, "theme"), token, map[string]any{
		"colors": map[string]string{"primary": "#111111"},
		"mode":   "neon",
	})
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "theme"), token, nil)
	require.Equal(t, http.StatusOK, status)

	var theme struct {
		Colors map[string]string `json:"colors"`
		Mode   string            `json:"mode"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &theme))
	require.Equal(t, "#111111", theme.Colors["primary"])
	require.Equal(t, "light", theme.Mode, "unknown modes are normalised")
}

func TestUnknownResource(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv.URL, "alice", "secret123")

	status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "widgets"), token, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "validation", env.Error)
}
