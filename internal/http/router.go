package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/gboparai/nhl-gamebot-sub000/internal/http/handlers"
	"github.com/gboparai/nhl-gamebot-sub000/internal/http/middleware"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
)

// NewRouter registers the status routes on a chi router.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/status", handler.Status)
	r.Route("/games", func(r chi.Router) {
		r.Get("/", handler.Games)
		r.Get("/{id}", handler.GameByID)
	})
	return r
}
