// Package catalog is the typed client for the external catalog service.
// Responses are decoded into explicit structs and validated at this boundary
// so malformed upstream payloads fail fast instead of leaking empty fields
// into the resolution flow.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/cleservice/storefront-resolver/pkg/errors"
	"github.com/cleservice/storefront-resolver/pkg/httpclient"
	"github.com/cleservice/storefront-resolver/pkg/validator"

	"github.com/cleservice/storefront-resolver/internal/domain"
)

// Doer is the transport the client sends requests through. Satisfied by
// httpclient.BreakerClient.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client consumes the read-only catalog HTTP API.
type Client struct {
	baseURL string
	http    Doer
	logger  *slog.Logger
}

// New creates a catalog client for the given base URL.
func New(baseURL string, doer Doer, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		logger:  logger,
	}
}

// NewWithBreaker is a convenience constructor that builds the default
// retrying transport wrapped in a circuit breaker.
func NewWithBreaker(baseURL string, logger *slog.Logger) *Client {
	base := httpclient.New(httpclient.DefaultConfig())
	breaker := httpclient.NewBreakerClient(base, httpclient.DefaultBreakerConfig("catalog-api"), logger)
	return New(baseURL, breaker, logger)
}

// ListBrands fetches the full brand registry.
func (c *Client) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := c.getJSON(ctx, c.baseURL+"/brands", &brands); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	if err := validator.ValidateSlice(brands); err != nil {
		return nil, fmt.Errorf("list brands: invalid upstream payload: %w", err)
	}
	return brands, nil
}

// KeysByBrand fetches the key catalog for an exact brand name.
func (c *Client) KeysByBrand(ctx context.Context, brandName string) ([]domain.KeyProduct, error) {
	u := c.baseURL + "/produit/cles?marque=" + url.QueryEscape(brandName)

	var keys []domain.KeyProduct
	if err := c.getJSON(ctx, u, &keys); err != nil {
		return nil, fmt.Errorf("keys for brand %q: %w", brandName, err)
	}
	if err := validator.ValidateSlice(keys); err != nil {
		return nil, fmt.Errorf("keys for brand %q: invalid upstream payload: %w", brandName, err)
	}
	return keys, nil
}

// KeyByName fetches one key product by its exact name.
func (c *Client) KeyByName(ctx context.Context, name string) (*domain.KeyProduct, error) {
	u := c.baseURL + "/produit/cles/by-name?nom=" + url.QueryEscape(name)

	var key domain.KeyProduct
	if err := c.getJSON(ctx, u, &key); err != nil {
		return nil, fmt.Errorf("key by name %q: %w", name, err)
	}
	if err := validator.Validate(&key); err != nil {
		return nil, fmt.Errorf("key by name %q: invalid upstream payload: %w", name, err)
	}
	return &key, nil
}

// BrandLogo fetches the binary logo blob for a brand. A 404 from upstream
// maps to a NotFound error.
func (c *Client) BrandLogo(ctx context.Context, brandName string) ([]byte, string, error) {
	u := c.baseURL + "/brands/logo/" + url.PathEscape(brandName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, "", fmt.Errorf("create logo request: %w", err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch logo for %q: %w", brandName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", apperrors.NotFound("brand logo", brandName)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch logo for %q: unexpected status %d", brandName, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read logo body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// Ping is a readiness probe against the brand-list endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/brands", http.NoBody)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog service status %d", resp.StatusCode)
	}
	return nil
}

// getJSON performs a GET and decodes the 200 response body into v.
func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
