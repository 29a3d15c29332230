package config

import (
	"fmt"

	pkgconfig "github.com/cleservice/storefront-resolver/pkg/config"
)

// Config holds all configuration for the resolver service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"RESOLVER_HTTP_PORT" envDefault:"8080"`

	// Upstream catalog API
	CatalogAPIURL       string `env:"CATALOG_API_URL" envDefault:"https://cl-back.onrender.com"`
	CatalogTimeoutSecs  int    `env:"CATALOG_TIMEOUT_SECONDS" envDefault:"15"`
	CatalogBreakerOff   bool   `env:"CATALOG_BREAKER_DISABLED" envDefault:"false"`
	CatalogMaxRetries   int    `env:"CATALOG_MAX_RETRIES" envDefault:"3"`
	CatalogRetryDelayMs int    `env:"CATALOG_RETRY_DELAY_MS" envDefault:"200"`

	// Cache backend: "memory" or "redis"
	CacheBackend    string `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLMinutes int    `env:"CACHE_TTL_MINUTES" envDefault:"30"`

	// Kafka analytics events
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Redirect table
	RedirectEntriesFile string `env:"REDIRECT_ENTRIES_FILE" envDefault:""`

	// Catalog preload on startup (comma-separated brand names, unset = none)
	PreloadBrands []string `env:"PRELOAD_BRANDS" envSeparator:","`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load resolver config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if cfg.CatalogAPIURL == "" {
		return nil, fmt.Errorf("CATALOG_API_URL is required")
	}
	if cfg.CacheBackend != "memory" && cfg.CacheBackend != "redis" {
		return nil, fmt.Errorf("CACHE_BACKEND must be memory or redis, got %q", cfg.CacheBackend)
	}
	if cfg.CacheBackend == "redis" && cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}
	if cfg.OTELSampleRate < 0 || cfg.OTELSampleRate > 1.0 {
		return nil, fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %f", cfg.OTELSampleRate)
	}
	return cfg, nil
}
