// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

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

	"github.com/innohub/api/internal/admin"
	"github.com/innohub/api/internal/content/event"
	"github.com/innohub/api/internal/content/feature"
	"github.com/innohub/api/internal/content/hero"
	"github.com/innohub/api/internal/content/team"
	"github.com/innohub/api/internal/content/testimonial"
	"github.com/innohub/api/internal/content/timeline"
	"github.com/innohub/api/internal/content/upload"
	"github.com/innohub/api/internal/platform/config"
	"github.com/innohub/api/internal/platform/constants"
	"github.com/innohub/api/internal/platform/middleware"
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
// New content sections add a field here — no other change to server.go is
// required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admin handles authentication and account lifecycle routes.
	Admin *admin.Handler

	// BanChecker gates the entire /admin tree against live ban status.
	BanChecker middleware.BanChecker

	// Content section handlers, each with a public and an admin surface.
	Hero        *hero.Handler
	Feature     *feature.Handler
	Event       *event.Handler
	Team        *team.Handler
	Testimonial *testimonial.Handler
	Timeline    *timeline.Handler

	// Upload relays admin image uploads to the external image host.
	Upload *upload.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Admin.AuthRoutes())

		// Public site content: active records only, cached.
		api.Route("/content", func(public chi.Router) {
			public.Mount("/hero", h.Hero.PublicRoutes())
			public.Mount("/features", h.Feature.PublicRoutes())
			public.Mount("/events", h.Event.PublicRoutes())
			public.Mount("/team", h.Team.PublicRoutes())
			public.Mount("/testimonials", h.Testimonial.PublicRoutes())
			public.Mount("/timeline", h.Timeline.PublicRoutes())
		})

		// Management surface: every route below requires an admin role and a
		// live non-banned account.
		api.Route("/admin", func(adminAPI chi.Router) {
			adminAPI.Use(middleware.RequireAdmin)
			adminAPI.Use(middleware.RequireNotBanned(h.BanChecker))

			adminAPI.Mount("/uploads", h.Upload.Routes())

			adminAPI.Route("/content", func(content chi.Router) {
				content.Mount("/hero", h.Hero.AdminRoutes())
				content.Mount("/features", h.Feature.AdminRoutes())
				content.Mount("/events", h.Event.AdminRoutes())
				content.Mount("/team", h.Team.AdminRoutes())
				content.Mount("/testimonials", h.Testimonial.AdminRoutes())
				content.Mount("/timeline", h.Timeline.AdminRoutes())
			})

			adminAPI.Mount("/", h.Admin.AdminRoutes())
		})
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
