// Package router wires the HTTP API together.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wolfman30/beauty-advisor/internal/http/handlers"
	httpmiddleware "github.com/wolfman30/beauty-advisor/internal/http/middleware"
	"github.com/wolfman30/beauty-advisor/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger         *logging.Logger
	ChatHandler    *handlers.ChatHandler
	ClinicHandler  *handlers.ClinicHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler http.Handler
}

// New creates a chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", handlers.Home)
	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.Health)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.ChatHandler != nil {
			api.Post("/chat", cfg.ChatHandler.Chat)
		}
		if cfg.ClinicHandler != nil {
			api.Route("/clinics", func(clinics chi.Router) {
				clinics.Get("/", cfg.ClinicHandler.List)
				clinics.Get("/search", cfg.ClinicHandler.Search)
				clinics.Get("/top", cfg.ClinicHandler.TopRated)
			})
			api.Get("/stats", cfg.ClinicHandler.Stats)
		}
	})

	return r
}
