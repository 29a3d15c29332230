package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cleservice/storefront-resolver/internal/domain"
)

const (
	brandsKey        = "resolver:brands"
	catalogKeyPrefix = "resolver:catalog:"
)

// Redis is a Cache backed by Redis, for deployments running several resolver
// replicas behind one cache. Values are JSON-serialized with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedis creates a Redis-backed cache and verifies the connection.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{client: client, ttl: cfg.TTL}, nil
}

// NewRedisWithClient wraps an existing client, primarily for tests.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// GetBrands returns the cached brand registry.
func (r *Redis) GetBrands(ctx context.Context) ([]domain.Brand, bool, error) {
	data, err := r.client.Get(ctx, brandsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get brands: %w", err)
	}

	var brands []domain.Brand
	if err := json.Unmarshal(data, &brands); err != nil {
		return nil, false, fmt.Errorf("unmarshal brands: %w", err)
	}
	return brands, true, nil
}

// SetBrands stores the brand registry with the configured TTL.
func (r *Redis) SetBrands(ctx context.Context, brands []domain.Brand) error {
	data, err := json.Marshal(brands)
	if err != nil {
		return fmt.Errorf("marshal brands: %w", err)
	}

	if err := r.client.Set(ctx, brandsKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set brands: %w", err)
	}
	return nil
}

// GetCatalog returns the cached key catalog for a brand name.
func (r *Redis) GetCatalog(ctx context.Context, brandName string) ([]domain.KeyProduct, bool, error) {
	data, err := r.client.Get(ctx, catalogKeyPrefix+brandName).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get catalog: %w", err)
	}

	var keys []domain.KeyProduct
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, false, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return keys, true, nil
}

// SetCatalog stores the key catalog for a brand name with the configured TTL.
func (r *Redis) SetCatalog(ctx context.Context, brandName string, keys []domain.KeyProduct) error {
	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := r.client.Set(ctx, catalogKeyPrefix+brandName, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set catalog: %w", err)
	}
	return nil
}

// Ping checks Redis connectivity, for readiness probes.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
