package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pshophttp "github.com/pshophq/pshop/internal/pshop/http"
	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/internal/pshop/store/drivers/sqlite"
	"github.com/pshophq/pshop/pkg/cryptox"
	"github.com/pshophq/pshop/pkg/httpx"
	"github.com/pshophq/pshop/pkg/slogx"
)

/*
 * Common helpers for API end-to-end tests. Each test gets its own
 * in-memory database and in-process HTTP server.
 */

const testAdminCode = "e2e-admin-code"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "pshop-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)
	os.Remove(pepperPath)

	// Tests fire many rapid auth requests from the same loopback address,
	// which would trip the production limit long before any assertion runs.
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 10000,
		Window:            time.Minute,
		Burst:             10000,
	}

	code := m.Run()
	os.Remove(pepperPath)
	os.Exit(code)
}

// newTestServer wires the full router against a fresh in-memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "pshop",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := pshophttp.NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{
		Store:      st,
		AdminCode:  testAdminCode,
		SessionTTL: 24 * time.Hour,
	}
	router.InventoryService = &service.InventoryService{Store: st}
	router.SalesService = &service.SalesService{Store: st}
	router.ExpenseService = &service.ExpenseService{Store: st}
	router.ThemeService = &service.ThemeService{Store: st}
	router.StatsService = &service.StatsService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// envelope mirrors the API response wrapper with the data left raw so each
// test can decode it into the shape it expects.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// doJSON sends a request with an optional JSON body and session token and
// decodes the response envelope.
func doJSON(t *testing.T, method, url, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Session-Id", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// registerUser creates an account and returns its session token.
func registerUser(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	status, env := doJSON(t, http.MethodPost, baseURL+"/auth?action=register", "", map[string]string{
		"username":  username,
		"password":  password,
		"adminCode": testAdminCode,
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var data struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.SessionID)
	return data.SessionID
}

// createProduct inserts a product through the API and returns its id.
func createProduct(t *testing.T, baseURL, token string, body map[string]any) string {
	t.Helper()

	status, env := doJSON(t, http.MethodPost, baseURL+"/data?resource=products", token, body)
	require.Equal(t, http.StatusOK, status, "create product failed: %s", env.Message)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.ID)
	return data.ID
}

func dataURL(baseURL, resource string, extra ...string) string {
	url := fmt.Sprintf("%s/data?resource=%s", baseURL, resource)
	for _, kv := range extra {
		url += "&" + kv
	}
	return url
}
