package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	// Probes bypass the rate limiter
	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)

		r.Get("/videos", handler.ListVideos)

		r.Get("/video/{id}", handler.GetVideo)
		r.Put("/video/{id}", handler.CreateVideo)
		r.Patch("/video/{id}", handler.UpdateVideo)
		r.Delete("/video/{id}", handler.DeleteVideo)
	})

	return r
}
