package resolver

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cleservice/storefront-resolver/pkg/errors"

	"github.com/cleservice/storefront-resolver/internal/cache"
	"github.com/cleservice/storefront-resolver/internal/domain"
)

// --- Mock CatalogAPI ---

type mockCatalogAPI struct {
	mock.Mock
}

func (m *mockCatalogAPI) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *mockCatalogAPI) KeysByBrand(ctx context.Context, brandName string) ([]domain.KeyProduct, error) {
	args := m.Called(ctx, brandName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KeyProduct), args.Error(1)
}

// --- Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(api *mockCatalogAPI) *Service {
	return NewService(api, cache.NewMemory(), nil, newTestLogger())
}

func testBrands() []domain.Brand {
	return []domain.Brand{
		{ID: 1, Name: "CLES ASSA"},
		{ID: 2, Name: "DOM"},
		{ID: 3, Name: "MUL-T-LOCK"},
		{ID: 4, Name: "VIGIE MOB"},
	}
}

func domCatalog() []domain.KeyProduct {
	return []domain.KeyProduct{
		{ID: 74, Name: "Clé Dom RS8", BrandName: "DOM", Price: 3490, ReproductionType: domain.ReproductionCopy},
	}
}

// --- Tests ---

func TestResolve_ProductSlugBypassesBrandFlow(t *testing.T) {
	api := &mockCatalogAPI{}
	svc := newTestService(api)

	res, err := svc.Resolve(context.Background(), "123-some-product-name")
	require.NoError(t, err)

	assert.Equal(t, domain.ResolutionProduct, res.Kind)
	require.NotNil(t, res.Product)
	assert.Equal(t, int64(123), res.Product.ProductID)
	assert.Equal(t, "some-product-name", res.Product.NameSlug)

	// Neither the brand list nor any catalog may be fetched.
	api.AssertNotCalled(t, "ListBrands", mock.Anything)
	api.AssertNotCalled(t, "KeysByBrand", mock.Anything, mock.Anything)
}

func TestResolve_KnownBrandSkipsBrandListFetch(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("KeysByBrand", mock.Anything, "CLES ASSA").Return([]domain.KeyProduct{
		{ID: 10, Name: "Clé Assa 700", BrandName: "CLES ASSA", Price: 2990},
	}, nil)

	svc := newTestService(api)

	res, err := svc.Resolve(context.Background(), "cles_assa_1_reproduction_cle.html")
	require.NoError(t, err)

	assert.Equal(t, domain.ResolutionBrand, res.Kind)
	assert.Equal(t, "CLES ASSA", res.Match.Brand.Name)
	assert.Equal(t, 0, res.Match.Distance)
	assert.False(t, res.Match.Fuzzy)
	require.Len(t, res.Catalog, 1)

	api.AssertNotCalled(t, "ListBrands", mock.Anything)
}

func TestResolve_FuzzyMatchExactName(t *testing.T) {
	// "DOM" is in the registry but not allow-listed, so the fuzzy path
	// runs and lands on an exact registry name at distance zero.
	api := &mockCatalogAPI{}
	api.On("ListBrands", mock.Anything).Return(testBrands(), nil)
	api.On("KeysByBrand", mock.Anything, "DOM").Return(domCatalog(), nil)

	svc := newTestService(api)

	res, err := svc.Resolve(context.Background(), "dom_1_reproduction_cle.html")
	require.NoError(t, err)

	assert.Equal(t, "DOM", res.Match.Brand.Name)
	assert.Equal(t, 0, res.Match.Distance)
	assert.True(t, res.Match.Fuzzy)
	require.Len(t, res.Catalog, 1)
}

func TestResolve_FuzzyMatchTypo(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("ListBrands", mock.Anything).Return(testBrands(), nil)
	api.On("KeysByBrand", mock.Anything, "CLES ASSA").Return([]domain.KeyProduct{
		{ID: 10, Name: "Clé Assa 700", BrandName: "CLES ASSA", Price: 2990},
	}, nil)

	svc := newTestService(api)

	// "clez_asa" is two edits from "CLES ASSA", far from everything else.
	res, err := svc.Resolve(context.Background(), "clez_asa_1_reproduction_cle.html")
	require.NoError(t, err)

	assert.Equal(t, "CLES ASSA", res.Match.Brand.Name)
	assert.Equal(t, 2, res.Match.Distance)
	assert.True(t, res.Match.Fuzzy)
}

func TestResolve_FuzzyDeterministic(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("ListBrands", mock.Anything).Return(testBrands(), nil)
	api.On("KeysByBrand", mock.Anything, mock.Anything).Return(domCatalog(), nil)

	svc := newTestService(api)

	first, err := svc.Resolve(context.Background(), "dxm")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.Resolve(context.Background(), "dxm")
		require.NoError(t, err)
		assert.Equal(t, first.Match.Brand.Name, again.Match.Brand.Name)
	}
}

func TestResolve_TieBreakLexicographic(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("ListBrands", mock.Anything).Return([]domain.Brand{
		{ID: 1, Name: "RONIS"},
		{ID: 2, Name: "RONIX"},
	}, nil)
	api.On("KeysByBrand", mock.Anything, "RONIS").Return([]domain.KeyProduct{}, nil)

	svc := newTestService(api)

	// "RONIZ" is distance 1 from both RONIS and RONIX.
	res, err := svc.Resolve(context.Background(), "roniz")
	require.NoError(t, err)
	assert.Equal(t, "RONIS", res.Match.Brand.Name)
	assert.Equal(t, 1, res.Match.Distance)
}

func TestResolve_BrandListUnavailable(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("ListBrands", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := newTestService(api)

	_, err := svc.Resolve(context.Background(), "unknown_brand")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BRAND_LIST_UNAVAILABLE", appErr.Code)
}

func TestResolve_EmptyBrandList(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("ListBrands", mock.Anything).Return([]domain.Brand{}, nil)

	svc := newTestService(api)

	_, err := svc.Resolve(context.Background(), "unknown_brand")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NO_CANDIDATE_BRANDS", appErr.Code)
}

func TestResolve_CatalogFetchFailed(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("KeysByBrand", mock.Anything, "VACHETTE").Return(nil, errors.New("status 503"))

	svc := newTestService(api)

	_, err := svc.Resolve(context.Background(), "vachette_1_reproduction_cle.html")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CATALOG_FETCH_FAILED", appErr.Code)
}

func TestResolve_EmptySlug(t *testing.T) {
	svc := newTestService(&mockCatalogAPI{})

	_, err := svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestResolve_CatalogServedFromCacheOnSecondCall(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("KeysByBrand", mock.Anything, "VACHETTE").Return([]domain.KeyProduct{
		{ID: 21, Name: "Clé Vachette Radial", BrandName: "VACHETTE", Price: 2590},
	}, nil).Once()

	svc := newTestService(api)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "vachette_1_reproduction_cle.html")
	require.NoError(t, err)

	// Second resolution must hit the cache; the Once() expectation above
	// fails the test if the upstream is called again.
	res, err := svc.Resolve(ctx, "vachette_1_reproduction_cle.html")
	require.NoError(t, err)
	require.Len(t, res.Catalog, 1)

	api.AssertExpectations(t)
}

func TestResolve_BrandListCachedAcrossResolutions(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("ListBrands", mock.Anything).Return(testBrands(), nil).Once()
	api.On("KeysByBrand", mock.Anything, mock.Anything).Return(domCatalog(), nil)

	svc := newTestService(api)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "dxm")
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, "vigie_mob")
	require.NoError(t, err)

	api.AssertExpectations(t)
}

func TestPreloadCatalogs(t *testing.T) {
	api := &mockCatalogAPI{}
	api.On("KeysByBrand", mock.Anything, "DOM").Return(domCatalog(), nil)
	api.On("KeysByBrand", mock.Anything, "VACHETTE").Return([]domain.KeyProduct{}, nil)
	api.On("KeysByBrand", mock.Anything, "BROKEN").Return(nil, errors.New("status 500"))

	svc := newTestService(api)

	results := svc.PreloadCatalogs(context.Background(), []string{"DOM", "VACHETTE", "BROKEN"})
	require.Len(t, results, 3)

	byBrand := make(map[string]PreloadResult, len(results))
	for _, r := range results {
		byBrand[r.Brand] = r
	}

	assert.Empty(t, byBrand["DOM"].Error)
	assert.Empty(t, byBrand["VACHETTE"].Error)
	assert.NotEmpty(t, byBrand["BROKEN"].Error)

	// Preloaded entries must be served from cache afterward.
	res, err := svc.Resolve(context.Background(), "dom_1_reproduction_cle.html")
	require.NoError(t, err)
	require.Len(t, res.Catalog, 1)
	api.AssertNumberOfCalls(t, "KeysByBrand", 3)
}
