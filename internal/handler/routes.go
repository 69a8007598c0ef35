package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen-go/internal/metrics"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
	// Metrics may be nil, in which case /metrics is not mounted.
	Metrics *metrics.Metrics
}

// NewRouter wires the API routes. The rate limiter's background sweeper runs
// until ctx is cancelled.
func NewRouter(ctx context.Context, svc *service.GeneratorService, opts RouterOptions) http.Handler {
	genHandler := NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(opts.Metrics))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validate", genHandler.HandleValidate)
		r.Get("/reset", genHandler.HandleReset)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
			r.Post("/generate", genHandler.HandleGenerate)
		})
	})

	return r
}
