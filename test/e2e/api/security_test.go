package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pshophq/pshop/pkg/httpx"
)

func TestDataRequiresSession(t *testing.T) {
	srv := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products"), "", nil)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "unauthenticated", env.Error)
	})

	t.Run("garbage token", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products"), "not-a-real-token", nil)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "unauthenticated", env.Error)
	})
}

func TestSessionTokenInQuery(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv.URL, "alice", "secret123")

	// The token can ride in the sessionId query parameter instead of the
	// X-Session-Id header.
	status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products", "sessionId="+token), "", nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)
}

func TestCrossTenantIsolation(t *testing.T) {
	srv := newTestServer(t)
	aliceToken := registerUser(t, srv.URL, "alice", "secret123")
	bobToken := registerUser(t, srv.URL, "bob", "secret123")

	id := createProduct(t, srv.URL, aliceToken, map[string]any{
		"name":        "Perfume X",
		"resalePrice": 100,
	})

	t.Run("bob cannot read alice's product", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products", "id="+id), bobToken, nil)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "not_found", env.Error)
	})

	t.Run("bob's list is empty", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, dataURL(srv.URL, "products"), bobToken, nil)
		require.Equal(t, http.StatusOK, status)

		var data []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Empty(t, data)
	})

	t.Run("bob cannot delete it either", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodDelete, dataURL(srv.URL, "products", "id="+id), bobToken, nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestRejectsUnknownJSONFields(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv.URL, "alice", "secret123")

	status, env := doJSON(t, http.MethodPost, dataURL(srv.URL, "products"), token, map[string]any{
		"name":      "Perfume X",
		"surpriseX": true,
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "validation", env.Error)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var health struct {
				Status  string `json:"status"`
				Version string `json:"version"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
			require.Equal(t, "ok", health.Status)
			require.Equal(t, "test", health.Version)
		})
	}
}

func TestAuthRateLimit(t *testing.T) {
	// Limits are captured when routes are built, so tighten the profile
	// before this server exists and restore it for later tests.
	saved := httpx.StrictLimit
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 3,
		Window:            time.Minute,
		Burst:             3,
	}
	defer func() { httpx.StrictLimit = saved }()

	srv := newTestServer(t)

	body := map[string]string{"username": "alice", "password": "wrong"}
	for range 3 {
		status, _ := doJSON(t, http.MethodPost, srv.URL+"/auth?action=login", "", body)
		require.Equal(t, http.StatusUnauthorized, status, "still under the limit")
	}

	status, env := doJSON(t, http.MethodPost, srv.URL+"/auth?action=login", "", body)
	require.Equal(t, http.StatusTooManyRequests, status)
	require.Equal(t, "rate_limited", env.Error)
}
