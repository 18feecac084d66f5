// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and the domain
handlers of one service into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - Each of the user, blog and comment processes builds one [Server] with its
    own route table; the middleware chain is identical in all three.
  - Identity is not a global middleware. Domain routers mount
    [middleware.Authenticate] on their mutating routes only.
*/
package api

import (
	stdctx "context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/scribe/internal/platform/config"
	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once per process with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Route mounts a domain router under a path prefix.
type Route struct {
	Prefix  string
	Handler http.Handler
}

// Handlers groups the HTTP handlers of one service.
type Handlers struct {
	// Liveness is the /health handler; always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Routes are the domain routers of the service (e.g. /blogs).
	Routes []Route
}

// # Server Initialization

// NewRouter builds the chi router with the full middleware chain and the
// given route groups.
func NewRouter(cfg *config.Config, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health checks for container orchestration.
	if h.Liveness != nil {
		r.Get("/health", h.Liveness)
	}
	if h.Readiness != nil {
		r.Get("/ready", h.Readiness)
	}

	// # Application API
	for _, route := range h.Routes {
		r.Mount(route.Prefix, route.Handler)
	}

	return r
}

// NewServer constructs the [Server] listening on cfg.ServerPort.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := NewRouter(cfg, log, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the root router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := stdctx.WithTimeout(stdctx.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
