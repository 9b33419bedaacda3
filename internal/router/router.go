// Package router sets up all HTTP routes and middleware chains for the
// directory server.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"citydex/internal/handlers"
	"citydex/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(search *handlers.Search, dir *handlers.Directory, sitemap *handlers.Sitemap) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Public API.
	r.Route("/api", func(r chi.Router) {
		// The omni-search box fires a request per keystroke; keep a
		// per-IP ceiling on it.
		r.Group(func(r chi.Router) {
			rl := middleware.NewRateLimiter(60, time.Minute)
			r.Use(rl.Middleware)
			r.Get("/search", search.Query)
		})

		r.Get("/directory/{locationSlug}/{categorySlug}", dir.Page)
	})

	// Sitemap for crawlers.
	r.Get("/sitemap.xml", sitemap.Serve)

	// Cache administration.
	r.Post("/admin/cache/invalidate", dir.Invalidate)

	return r
}

// healthHandler responds to load balancer health checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
