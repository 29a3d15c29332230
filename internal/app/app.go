package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	pkgkafka "github.com/cleservice/storefront-resolver/pkg/kafka"

	"github.com/cleservice/storefront-resolver/pkg/health"
	"github.com/cleservice/storefront-resolver/pkg/httpclient"
	"github.com/cleservice/storefront-resolver/pkg/middleware"
	"github.com/cleservice/storefront-resolver/pkg/tracing"

	"github.com/cleservice/storefront-resolver/internal/cache"
	"github.com/cleservice/storefront-resolver/internal/catalog"
	"github.com/cleservice/storefront-resolver/internal/config"
	"github.com/cleservice/storefront-resolver/internal/event"
	handler "github.com/cleservice/storefront-resolver/internal/handler/http"
	"github.com/cleservice/storefront-resolver/internal/redirect"
	"github.com/cleservice/storefront-resolver/internal/resolver"
)

// App wires together all dependencies and runs the resolver service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	resolver       *resolver.Service
	kafkaProducer  *pkgkafka.Producer
	tracerShutdown func(context.Context) error
	httpServer     *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize distributed tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront-resolver",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	healthHandler := health.NewHandler()

	// Cache backend.
	var store cache.Cache
	switch cfg.CacheBackend {
	case "redis":
		redisCache, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		})
		if err != nil {
			return nil, fmt.Errorf("init redis cache: %w", err)
		}
		store = redisCache
		healthHandler.Register("redis", redisCache.Ping)
		logger.Info("redis cache initialized", slog.String("addr", cfg.RedisAddr))
	default:
		store = cache.NewMemory()
		logger.Info("in-memory cache initialized")
	}

	// Upstream catalog client with retries and an optional circuit breaker.
	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = time.Duration(cfg.CatalogTimeoutSecs) * time.Second
	clientCfg.MaxRetries = cfg.CatalogMaxRetries
	clientCfg.RetryWaitMin = time.Duration(cfg.CatalogRetryDelayMs) * time.Millisecond

	var doer catalog.Doer = httpclient.New(clientCfg)
	if !cfg.CatalogBreakerOff {
		doer = httpclient.NewBreakerClient(
			httpclient.New(clientCfg),
			httpclient.DefaultBreakerConfig("catalog-api"),
			logger,
		)
	}
	catalogClient := catalog.New(cfg.CatalogAPIURL, doer, logger)
	healthHandler.Register("catalog-api", catalogClient.Ping)

	// Kafka analytics events, disabled by default.
	var kafkaProducer *pkgkafka.Producer
	var producer *event.Producer
	if cfg.KafkaEnabled {
		kafkaProducer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		producer = event.NewProducer(kafkaProducer, logger)
		healthHandler.Register("kafka", func(ctx context.Context) error {
			return pkgkafka.PingBrokers(ctx, cfg.KafkaBrokers)
		})
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}

	// Static redirect table, optionally overridden from a JSON file.
	table, err := redirect.NewDefaultTable(cfg.RedirectEntriesFile)
	if err != nil {
		return nil, fmt.Errorf("load redirect table: %w", err)
	}
	logger.Info("redirect table loaded", slog.Int("entries", table.Len()))

	resolverService := resolver.NewService(catalogClient, store, producer, logger)

	router := handler.NewRouter(handler.RouterConfig{
		Resolver:      resolverService,
		Catalog:       catalogClient,
		RedirectTable: table,
		Producer:      producer,
		Health:        healthHandler,
		Logger:        logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		resolver:       resolverService,
		kafkaProducer:  kafkaProducer,
		tracerShutdown: tracerShutdown,
		httpServer:     httpServer,
	}, nil
}

// Run starts the HTTP server, blocking until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Warm brand catalogs in the background so a cold start does not pay
	// the upstream latency on first resolution.
	if brands := preloadList(a.cfg.PreloadBrands); len(brands) > 0 {
		go func() {
			results := a.resolver.PreloadCatalogs(ctx, brands)
			for _, res := range results {
				if res.Error != "" {
					a.logger.Warn("catalog preload failed",
						slog.String("brand", res.Brand),
						slog.String("error", res.Error),
					)
				}
			}
			a.logger.Info("catalog preload finished", slog.Int("brands", len(brands)))
		}()
	}

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.kafkaProducer != nil {
		if err := a.kafkaProducer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}

// preloadList drops empty names left over from env parsing.
func preloadList(brands []string) []string {
	out := make([]string, 0, len(brands))
	for _, b := range brands {
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}
