// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const requestTimeout = 30 * time.Second

// NewRouter はミドルウェアとルートを登録したルーターを返します。
func NewRouter(cfg *config.Config, logger *slog.Logger, updates *UpdateHandler, health *HealthHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/updates", updates.PostUpdate)
	})
	r.Get("/healthz", health.GetHealth)

	return r
}
