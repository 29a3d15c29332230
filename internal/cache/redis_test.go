package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleservice/storefront-resolver/internal/domain"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisWithClient(client, time.Hour)
}

func TestRedis_BrandsRoundTrip(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()

	_, ok, err := r.GetBrands(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	brands := []domain.Brand{{ID: 1, Name: "DOM"}, {ID: 2, Name: "CLES ASSA"}}
	require.NoError(t, r.SetBrands(ctx, brands))

	got, ok, err := r.GetBrands(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, brands, got)
}

func TestRedis_CatalogRoundTrip(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()

	alt := int64(2490)
	keys := []domain.KeyProduct{{
		ID:               10,
		Name:             "Clé Assa 700",
		BrandName:        "CLES ASSA",
		Price:            2990,
		AlternatePrice:   &alt,
		ReproductionType: domain.ReproductionNumbered,
		RequiresPasskey:  true,
	}}
	require.NoError(t, r.SetCatalog(ctx, "CLES ASSA", keys))

	got, ok, err := r.GetCatalog(ctx, "CLES ASSA")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, keys, got)
}

func TestRedis_MissIsNotError(t *testing.T) {
	r := newTestRedis(t)

	_, ok, err := r.GetCatalog(context.Background(), "UNKNOWN")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	r := NewRedisWithClient(client, time.Minute)

	ctx := context.Background()
	require.NoError(t, r.SetCatalog(ctx, "DOM", []domain.KeyProduct{{ID: 1, Name: "k", BrandName: "DOM"}}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := r.GetCatalog(ctx, "DOM")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_Ping(t *testing.T) {
	r := newTestRedis(t)
	assert.NoError(t, r.Ping(context.Background()))
}
