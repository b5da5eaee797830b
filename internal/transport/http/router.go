// Package httptransport assembles the HTTP surface: middleware stack, admin
// routes, health probes, and the metrics endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "mentorhub/internal/auth/handler"
	"mentorhub/internal/moderation/handler"
	"mentorhub/internal/platform/health"
	"mentorhub/internal/platform/metrics"
	"mentorhub/internal/platform/middleware"
)

// Deps are the wired collaborators the router mounts. Metrics is optional;
// without it the latency middleware is skipped.
type Deps struct {
	Auth       *authHandler.Handler
	Moderation *handler.Handler
	Health     *health.Handler
	Sessions   middleware.TokenValidator
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// NewRouter wires all endpoints with the middleware stack. Everything under
// /admin resolves the session cookie into a principal; the moderation routes
// additionally require one.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Latency(deps.Metrics.EndpointLatency))
	}
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	deps.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.ResolvePrincipal(deps.Sessions, deps.Logger))

		deps.Auth.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(deps.Logger))
			deps.Moderation.Register(r)
		})
	})

	return r
}
