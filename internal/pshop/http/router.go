package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/internal/pshop/store"
	"github.com/pshophq/pshop/pkg/httpx"
	"github.com/pshophq/pshop/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService      *service.AuthService
	InventoryService *service.InventoryService
	SalesService     *service.SalesService
	ExpenseService   *service.ExpenseService
	ThemeService     *service.ThemeService
	StatsService     *service.StatsService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerData()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential operations share one dispatch handler; rate limit by IP to
	// slow brute force attempts on login and the admin code.
	r.Mux.Handle("/auth",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerData() {
	h := &DataHandler{
		Products: &ProductsHandler{InventoryService: r.InventoryService},
		Sales:    &SalesHandler{SalesService: r.SalesService},
		Expenses: &ExpensesHandler{ExpenseService: r.ExpenseService},
		Theme:    &ThemeHandler{ThemeService: r.ThemeService},
		Stats:    &StatsHandler{StatsService: r.StatsService},
	}

	// Every data operation requires a live session; the rate limit keys on
	// the resolved user id.
	r.Mux.Handle("/data",
		httpx.Chain(h,
			httpx.SessionMiddleware(r.AuthService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
