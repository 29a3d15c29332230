package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cleservice/storefront-resolver/pkg/httputil"
	"github.com/cleservice/storefront-resolver/pkg/validator"

	"github.com/cleservice/storefront-resolver/internal/domain"
	"github.com/cleservice/storefront-resolver/internal/resolver"
)

// CatalogReader is the slice of the catalog client the passthrough
// endpoints need.
type CatalogReader interface {
	KeyByName(ctx context.Context, name string) (*domain.KeyProduct, error)
	BrandLogo(ctx context.Context, brandName string) ([]byte, string, error)
}

// ResolveHandler handles slug resolution and catalog endpoints.
type ResolveHandler struct {
	resolver *resolver.Service
	catalog  CatalogReader
	logger   *slog.Logger
}

// NewResolveHandler creates a new resolution HTTP handler.
func NewResolveHandler(svc *resolver.Service, catalog CatalogReader, logger *slog.Logger) *ResolveHandler {
	return &ResolveHandler{
		resolver: svc,
		catalog:  catalog,
		logger:   logger,
	}
}

// --- DTOs ---

// PreloadRequest is the JSON request body for warming brand catalogs.
type PreloadRequest struct {
	Brands []string `json:"brands" validate:"required,min=1,max=50,dive,required"`
}

// ProductRedirectResponse describes a product-slug resolution.
type ProductRedirectResponse struct {
	ProductID int64  `json:"product_id"`
	NameSlug  string `json:"name_slug"`
}

// BrandMatchResponse describes a brand-slug resolution.
type BrandMatchResponse struct {
	Brand    domain.Brand        `json:"brand"`
	Distance int                 `json:"distance"`
	Fuzzy    bool                `json:"fuzzy"`
	Catalog  []domain.KeyProduct `json:"catalog"`
}

// ResolutionResponse is the JSON response for GET /api/v1/resolve/{slug}.
type ResolutionResponse struct {
	Kind    domain.ResolutionKind    `json:"kind"`
	Product *ProductRedirectResponse `json:"product,omitempty"`
	Match   *BrandMatchResponse      `json:"match,omitempty"`
}

// --- Handlers ---

// Resolve handles GET /api/v1/resolve/{slug}
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	res, err := h.resolver.Resolve(r.Context(), slug)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp := ResolutionResponse{Kind: res.Kind}
	switch res.Kind {
	case domain.ResolutionProduct:
		resp.Product = &ProductRedirectResponse{
			ProductID: res.Product.ProductID,
			NameSlug:  res.Product.NameSlug,
		}
	case domain.ResolutionBrand:
		resp.Match = &BrandMatchResponse{
			Brand:    res.Match.Brand,
			Distance: res.Match.Distance,
			Fuzzy:    res.Match.Fuzzy,
			Catalog:  res.Catalog,
		}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: resp})
}

// Preload handles POST /api/v1/catalog/preload
func (h *ResolveHandler) Preload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req PreloadRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	results := h.resolver.PreloadCatalogs(r.Context(), req.Brands)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: results})
}

// KeyByName handles GET /api/v1/keys/by-name?nom=
func (h *ResolveHandler) KeyByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("nom")
	if name == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "nom query parameter is required"},
		})
		return
	}

	key, err := h.catalog.KeyByName(r.Context(), name)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: key})
}

// BrandLogo handles GET /api/v1/brands/logo/{brandName}
func (h *ResolveHandler) BrandLogo(w http.ResponseWriter, r *http.Request) {
	brandName := chi.URLParam(r, "brandName")

	logo, contentType, err := h.catalog.BrandLogo(r.Context(), brandName)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(logo)
}
