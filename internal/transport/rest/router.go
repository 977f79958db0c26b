package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/vidafit-backend/internal/transport/middleware"
)

// NewRouter mounts the health endpoints behind request ID, recovery and
// access logging.
func NewRouter(log *slog.Logger, health *HealthHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	return r
}
