// Package web provides the HTTP server and handlers for the back-office
// application. Handlers translate form and JSON submissions into core
// operations and render every result as the uniform Outcome shape the UI
// consumes.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/iparr-biocorellc/backoffice/internal/auth"
	"github.com/iparr-biocorellc/backoffice/internal/config"
	"github.com/iparr-biocorellc/backoffice/internal/core"
	"github.com/iparr-biocorellc/backoffice/internal/web/middleware"
)

// Dashboard routes whose cached listing views are invalidated by mutations.
const (
	routeInvoices  = "/dashboard/invoices"
	routeSales     = "/dashboard/sales"
	routePurchases = "/dashboard/purchases"
	routeRefunds   = "/dashboard/refunds"
	routeLabels    = "/dashboard/labels"
)

// Server is the HTTP server for the back-office application.
type Server struct {
	service *core.Service
	auth    *auth.Service
	tokens  *auth.TokenManager
	views   *viewCache
	router  *chi.Mux
	server  *http.Server
	cfg     *config.Config
}

// NewServer creates a Server instance.
func NewServer(service *core.Service, authService *auth.Service, tokens *auth.TokenManager, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		auth:    authService,
		tokens:  tokens,
		views:   newViewCache(),
		router:  chi.NewRouter(),
		cfg:     cfg,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Credential flows stay outside the session check.
	s.router.Post("/api/auth/login", s.handleLogin)
	s.router.Post("/api/auth/signup", s.handleSignup)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.SessionAuth(s.tokens))

		r.Get("/invoices", s.handleListInvoices)
		r.Post("/invoices", s.handleCreateInvoice)
		r.Put("/invoices/{id}", s.handleUpdateInvoice)
		r.Delete("/invoices/{id}", s.handleDeleteInvoice)

		r.Get("/orders", s.handleListOrders)
		r.Put("/orders/{orderNumber}", s.handleUpdateOrder)
		r.Delete("/orders/{orderNumber}", s.handleDeleteOrder)

		r.Get("/purchases", s.handleListPurchases)
		r.Put("/purchases/{itemID}", s.handleUpdatePurchase)
		r.Delete("/purchases/{itemID}", s.handleDeletePurchase)

		r.Get("/refunds", s.handleListRefunds)

		r.Get("/labels", s.handleListLabels)
		r.Post("/labels", s.handleCreateLabel)
		r.Put("/labels/{trackingNumber}", s.handleUpdateLabel)
		r.Delete("/labels/{trackingNumber}", s.handleDeleteLabel)

		r.Post("/import/orders", s.handleImportOrders)
		r.Post("/import/purchases", s.handleImportPurchases)
		r.Post("/import/refunds", s.handleImportRefunds)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
