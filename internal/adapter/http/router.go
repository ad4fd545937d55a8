package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/quipuapp/quipu/internal/adapter/http/handler"
	"github.com/quipuapp/quipu/internal/adapter/http/middleware"
	"github.com/quipuapp/quipu/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	ChartHandler     *handler.ChartHandler
	PeriodHandler    *handler.PeriodHandler
	ClosingHandler   *handler.ClosingHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
}

// NewRouter creates the HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{code}", cfg.AccountHandler.Get)
			r.Get("/{code}/balance", cfg.AccountHandler.GetBalance)
		})

		r.Route("/chart", func(r chi.Router) {
			r.Post("/analyze", cfg.ChartHandler.Analyze)
			r.Post("/classify", cfg.ChartHandler.Classify)
		})

		r.Route("/periods", func(r chi.Router) {
			r.Get("/", cfg.PeriodHandler.List)
			r.Get("/{id}", cfg.PeriodHandler.Get)
			r.Post("/{id}/adjustments/preview", cfg.ClosingHandler.PreviewAdjustments)
			r.Post("/{id}/closing/preview", cfg.ClosingHandler.PreviewClosing)

			r.Group(func(r chi.Router) {
				if cfg.IdempotencyStore != nil {
					idem := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
					r.Use(idem.Wrap)
				}
				r.Post("/{id}/closing", cfg.ClosingHandler.Run)
			})
		})
	})

	return r
}
