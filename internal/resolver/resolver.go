// Package resolver turns route slugs from the storefront into a confirmed
// brand and its key catalog, using an exact allow-list first and
// Levenshtein-based fuzzy matching against the brand registry otherwise.
package resolver

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/cleservice/storefront-resolver/pkg/errors"

	"github.com/cleservice/storefront-resolver/internal/cache"
	"github.com/cleservice/storefront-resolver/internal/domain"
	"github.com/cleservice/storefront-resolver/internal/event"
)

var (
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_resolutions_total",
			Help: "Total slug resolutions by outcome",
		},
		[]string{"outcome"},
	)

	fuzzyDistance = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resolver_fuzzy_distance",
			Help:    "Levenshtein distance of fuzzy brand matches",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_cache_lookups_total",
			Help: "Cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)
)

// CatalogAPI is the slice of the catalog client the resolver needs.
type CatalogAPI interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	KeysByBrand(ctx context.Context, brandName string) ([]domain.KeyProduct, error)
}

// Service implements slug resolution.
type Service struct {
	api      CatalogAPI
	cache    cache.Cache
	producer *event.Producer
	logger   *slog.Logger
}

// NewService creates a resolver service.
func NewService(api CatalogAPI, c cache.Cache, producer *event.Producer, logger *slog.Logger) *Service {
	return &Service{
		api:      api,
		cache:    c,
		producer: producer,
		logger:   logger,
	}
}

// Resolve maps one route slug to either a product redirect or a brand match
// with its catalog.
func (s *Service) Resolve(ctx context.Context, slug string) (*domain.Resolution, error) {
	if slug == "" {
		resolutionsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.InvalidInput("slug is empty")
	}

	// Slugs like "123-some-product" name a product directly and bypass
	// brand resolution entirely.
	if redirect := parseProductSlug(slug); redirect != nil {
		resolutionsTotal.WithLabelValues("product_redirect").Inc()
		s.publishProductRedirected(ctx, slug, redirect)
		return &domain.Resolution{
			Kind:    domain.ResolutionProduct,
			Product: redirect,
		}, nil
	}

	candidate := normalizeBrandSlug(slug)
	if candidate == "" {
		resolutionsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.InvalidInput("slug normalizes to an empty brand name")
	}

	match, err := s.matchBrand(ctx, candidate)
	if err != nil {
		resolutionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx, match.Brand.Name)
	if err != nil {
		resolutionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if match.Fuzzy {
		resolutionsTotal.WithLabelValues("brand_fuzzy").Inc()
		fuzzyDistance.Observe(float64(match.Distance))
	} else {
		resolutionsTotal.WithLabelValues("brand_exact").Inc()
	}

	s.publishBrandResolved(ctx, slug, match)

	s.logger.InfoContext(ctx, "slug resolved",
		slog.String("slug", slug),
		slog.String("brand", match.Brand.Name),
		slog.Int("distance", match.Distance),
		slog.Bool("fuzzy", match.Fuzzy),
	)

	return &domain.Resolution{
		Kind:    domain.ResolutionBrand,
		Match:   match,
		Catalog: catalog,
	}, nil
}

// matchBrand finds the brand for a normalized candidate name. Allow-listed
// names skip the brand-list fetch and are queried by exact name.
func (s *Service) matchBrand(ctx context.Context, candidate string) (*domain.BrandMatch, error) {
	if domain.IsKnownBrand(candidate) {
		return &domain.BrandMatch{
			Brand:    domain.Brand{Name: candidate},
			Distance: 0,
			Fuzzy:    false,
		}, nil
	}

	brands, err := s.loadBrands(ctx)
	if err != nil {
		return nil, err
	}
	if len(brands) == 0 {
		return nil, apperrors.NoCandidateBrands()
	}

	best := brands[0]
	bestDistance := levenshtein(best.Name, candidate)
	for _, b := range brands[1:] {
		d := levenshtein(b.Name, candidate)
		// Ties go to the lexicographically smaller brand name so repeated
		// resolutions are deterministic regardless of registry order.
		if d < bestDistance || (d == bestDistance && b.Name < best.Name) {
			best = b
			bestDistance = d
		}
	}

	return &domain.BrandMatch{
		Brand:    best,
		Distance: bestDistance,
		Fuzzy:    true,
	}, nil
}

// loadBrands returns the brand registry, serving from cache when possible.
func (s *Service) loadBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, ok, err := s.cache.GetBrands(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "brand cache read failed", slog.String("error", err.Error()))
	}
	if ok {
		cacheLookupsTotal.WithLabelValues("brands", "hit").Inc()
		return brands, nil
	}
	cacheLookupsTotal.WithLabelValues("brands", "miss").Inc()

	brands, err = s.api.ListBrands(ctx)
	if err != nil {
		return nil, apperrors.BrandListUnavailable(err)
	}

	if err := s.cache.SetBrands(ctx, brands); err != nil {
		s.logger.WarnContext(ctx, "brand cache write failed", slog.String("error", err.Error()))
	}
	return brands, nil
}

// loadCatalog returns a brand's key catalog, serving from cache when possible.
func (s *Service) loadCatalog(ctx context.Context, brandName string) ([]domain.KeyProduct, error) {
	keys, ok, err := s.cache.GetCatalog(ctx, brandName)
	if err != nil {
		s.logger.WarnContext(ctx, "catalog cache read failed",
			slog.String("brand", brandName),
			slog.String("error", err.Error()),
		)
	}
	if ok {
		cacheLookupsTotal.WithLabelValues("catalog", "hit").Inc()
		return keys, nil
	}
	cacheLookupsTotal.WithLabelValues("catalog", "miss").Inc()

	keys, err = s.api.KeysByBrand(ctx, brandName)
	if err != nil {
		return nil, apperrors.CatalogFetchFailed(brandName, err)
	}

	if err := s.cache.SetCatalog(ctx, brandName, keys); err != nil {
		s.logger.WarnContext(ctx, "catalog cache write failed",
			slog.String("brand", brandName),
			slog.String("error", err.Error()),
		)
	}
	return keys, nil
}

// PreloadResult reports the outcome of one brand's preload.
type PreloadResult struct {
	Brand string `json:"brand"`
	Error string `json:"error,omitempty"`
}

// PreloadCatalogs warms the catalog cache for the given brand names
// concurrently. Each fetch is independent and idempotent; one failure does
// not abort the batch.
func (s *Service) PreloadCatalogs(ctx context.Context, brandNames []string) []PreloadResult {
	results := make([]PreloadResult, len(brandNames))

	var wg sync.WaitGroup
	for i, name := range brandNames {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()

			results[i] = PreloadResult{Brand: name}
			if _, err := s.loadCatalog(ctx, name); err != nil {
				results[i].Error = err.Error()
			}
		}(i, name)
	}
	wg.Wait()

	return results
}

func (s *Service) publishBrandResolved(ctx context.Context, slug string, match *domain.BrandMatch) {
	if s.producer == nil {
		return
	}
	err := s.producer.PublishBrandResolved(ctx, event.BrandResolvedData{
		Slug:     slug,
		Brand:    match.Brand.Name,
		Distance: match.Distance,
		Fuzzy:    match.Fuzzy,
	})
	if err != nil {
		// Analytics only; never fail the resolution.
		s.logger.ErrorContext(ctx, "failed to publish brand.resolved event",
			slog.String("brand", match.Brand.Name),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) publishProductRedirected(ctx context.Context, slug string, redirect *domain.ProductRedirect) {
	if s.producer == nil {
		return
	}
	err := s.producer.PublishProductRedirected(ctx, event.ProductRedirectedData{
		Slug:      slug,
		ProductID: redirect.ProductID,
		NameSlug:  redirect.NameSlug,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.redirected event",
			slog.Int64("product_id", redirect.ProductID),
			slog.String("error", err.Error()),
		)
	}
}
