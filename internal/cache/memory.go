package cache

import (
	"context"
	"sync"

	"github.com/cleservice/storefront-resolver/internal/domain"
)

// Memory is the in-process Cache used by a single replica. Bounded in
// practice by the number of distinct brands ever viewed, so there is no
// eviction. Thread-safe via sync.RWMutex.
type Memory struct {
	mu       sync.RWMutex
	brands   []domain.Brand
	catalogs map[string][]domain.KeyProduct
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		catalogs: make(map[string][]domain.KeyProduct),
	}
}

// GetBrands returns the cached brand registry.
func (m *Memory) GetBrands(_ context.Context) ([]domain.Brand, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.brands == nil {
		return nil, false, nil
	}
	out := make([]domain.Brand, len(m.brands))
	copy(out, m.brands)
	return out, true, nil
}

// SetBrands stores the brand registry.
func (m *Memory) SetBrands(_ context.Context, brands []domain.Brand) error {
	stored := make([]domain.Brand, len(brands))
	copy(stored, brands)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.brands = stored
	return nil
}

// GetCatalog returns the cached key catalog for a brand name.
func (m *Memory) GetCatalog(_ context.Context, brandName string) ([]domain.KeyProduct, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys, ok := m.catalogs[brandName]
	if !ok {
		return nil, false, nil
	}
	out := make([]domain.KeyProduct, len(keys))
	copy(out, keys)
	return out, true, nil
}

// SetCatalog stores the key catalog for a brand name.
func (m *Memory) SetCatalog(_ context.Context, brandName string, keys []domain.KeyProduct) error {
	stored := make([]domain.KeyProduct, len(keys))
	copy(stored, keys)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalogs[brandName] = stored
	return nil
}
