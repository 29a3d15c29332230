// Package cache holds the session-scoped brand and catalog caches. The cache
// is an explicit dependency constructed once per application instance and
// injected into consumers; there is no package-level state.
package cache

import (
	"context"

	"github.com/cleservice/storefront-resolver/internal/domain"
)

// Cache stores the brand registry and per-brand key catalogs. Writes are
// last-write-wins per key; a concurrent re-fetch overwriting the same entry
// is safe. A miss is reported via the bool return, never as an error.
type Cache interface {
	// GetBrands returns the cached brand registry.
	GetBrands(ctx context.Context) ([]domain.Brand, bool, error)

	// SetBrands stores the brand registry.
	SetBrands(ctx context.Context, brands []domain.Brand) error

	// GetCatalog returns the cached key catalog for a brand name.
	GetCatalog(ctx context.Context, brandName string) ([]domain.KeyProduct, bool, error)

	// SetCatalog stores the key catalog for a brand name.
	SetCatalog(ctx context.Context, brandName string, keys []domain.KeyProduct) error
}
