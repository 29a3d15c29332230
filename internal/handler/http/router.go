package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cleservice/storefront-resolver/pkg/health"
	"github.com/cleservice/storefront-resolver/pkg/middleware"

	"github.com/cleservice/storefront-resolver/internal/event"
	"github.com/cleservice/storefront-resolver/internal/redirect"
	"github.com/cleservice/storefront-resolver/internal/resolver"
)

// RouterConfig carries the dependencies the router wires together.
type RouterConfig struct {
	Resolver      *resolver.Service
	Catalog       CatalogReader
	RedirectTable *redirect.Table
	Producer      *event.Producer
	Health        *health.Handler
	Logger        *slog.Logger
	CORS          middleware.CORSConfig
}

// NewRouter creates a chi router with all resolver service routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("resolver"))
	r.Use(middleware.Tracing("storefront-resolver"))

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	resolveHandler := NewResolveHandler(cfg.Resolver, cfg.Catalog, cfg.Logger)
	redirectHandler := NewRedirectHandler(cfg.RedirectTable, cfg.Producer, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/resolve/{slug}", resolveHandler.Resolve)
		r.Get("/redirects/lookup", redirectHandler.Lookup)
		r.Get("/keys/by-name", resolveHandler.KeyByName)
		r.Get("/brands/logo/{brandName}", resolveHandler.BrandLogo)
		r.Post("/catalog/preload", resolveHandler.Preload)
	})

	// Legacy order URLs from the previous storefront.
	r.Get("/r/*", redirectHandler.Legacy)

	return r
}
