// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/atelierhq/atelier/internal/auth"
	"github.com/atelierhq/atelier/internal/core/about"
	"github.com/atelierhq/atelier/internal/core/blog"
	"github.com/atelierhq/atelier/internal/core/contact"
	"github.com/atelierhq/atelier/internal/core/exhibition"
	"github.com/atelierhq/atelier/internal/core/gallery"
	"github.com/atelierhq/atelier/internal/platform/config"
	"github.com/atelierhq/atelier/internal/platform/constants"
	"github.com/atelierhq/atelier/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Revalidate is the shared-secret page-cache purge endpoint.
	Revalidate http.HandlerFunc

	// Auth handles admin authentication routes (login, refresh, me).
	Auth *auth.Handler

	// Exhibition handles the exhibitions listing and admin management.
	Exhibition *exhibition.Handler

	// Gallery handles the paintings portfolio.
	Gallery *gallery.Handler

	// Blog handles journal posts.
	Blog *blog.Handler

	// About handles the singleton artist page.
	About *about.Handler

	// Contact handles visitor messages and the admin inbox.
	Contact *contact.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// Cache purge, guarded by a shared secret rather than a JWT so the
	// frontend's server-side code can call it without an admin session.
	r.Get("/api/revalidate", h.Revalidate)

	// # Static Objects
	// Uploaded images are served straight off disk under /uploads.
	uploadsServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Handle("/uploads/*", uploadsServer)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)
		api.Route("/exhibitions", h.Exhibition.RegisterRoutes)
		api.Route("/paintings", h.Gallery.RegisterRoutes)
		api.Route("/blog", h.Blog.RegisterRoutes)
		api.Route("/about", h.About.RegisterRoutes)
		api.Route("/contact", h.Contact.RegisterRoutes)
	})

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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
