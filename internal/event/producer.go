package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cleservice/storefront-resolver/pkg/logger"

	pkgkafka "github.com/cleservice/storefront-resolver/pkg/kafka"
)

// Kafka topics for storefront analytics events.
const (
	TopicBrandResolved     = "storefront.brand.resolved"
	TopicProductRedirected = "storefront.product.redirected"
	TopicRedirectHit       = "storefront.redirect.hit"
)

// Source identifier for events originating from this service.
const SourceResolver = "storefront-resolver"

// BrandResolvedData is the payload for a brand.resolved event.
type BrandResolvedData struct {
	Slug     string `json:"slug"`
	Brand    string `json:"brand"`
	Distance int    `json:"distance"`
	Fuzzy    bool   `json:"fuzzy"`
}

// ProductRedirectedData is the payload for a product.redirected event.
type ProductRedirectedData struct {
	Slug      string `json:"slug"`
	ProductID int64  `json:"product_id"`
	NameSlug  string `json:"name_slug"`
}

// RedirectHitData is the payload for a redirect.hit event.
type RedirectHitData struct {
	SourcePath     string `json:"source_path"`
	DestinationURL string `json:"destination_url"`
}

// Producer publishes storefront analytics events. Publishing is best-effort:
// callers log failures and never fail the request path on them.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer for the resolver service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{kafka: kafka, logger: logger}
}

// PublishBrandResolved publishes a storefront.brand.resolved event.
func (p *Producer) PublishBrandResolved(ctx context.Context, data BrandResolvedData) error {
	ev, err := pkgkafka.NewEvent(TopicBrandResolved, data.Brand, "brand", SourceResolver, data)
	if err != nil {
		return fmt.Errorf("create brand.resolved event: %w", err)
	}
	ev.WithCorrelationID(logger.CorrelationIDFromContext(ctx))
	return p.kafka.Publish(ctx, TopicBrandResolved, ev)
}

// PublishProductRedirected publishes a storefront.product.redirected event.
func (p *Producer) PublishProductRedirected(ctx context.Context, data ProductRedirectedData) error {
	ev, err := pkgkafka.NewEvent(TopicProductRedirected, strconv.FormatInt(data.ProductID, 10), "product", SourceResolver, data)
	if err != nil {
		return fmt.Errorf("create product.redirected event: %w", err)
	}
	ev.WithCorrelationID(logger.CorrelationIDFromContext(ctx))
	return p.kafka.Publish(ctx, TopicProductRedirected, ev)
}

// PublishRedirectHit publishes a storefront.redirect.hit event.
func (p *Producer) PublishRedirectHit(ctx context.Context, data RedirectHitData) error {
	ev, err := pkgkafka.NewEvent(TopicRedirectHit, data.SourcePath, "redirect", SourceResolver, data)
	if err != nil {
		return fmt.Errorf("create redirect.hit event: %w", err)
	}
	ev.WithCorrelationID(logger.CorrelationIDFromContext(ctx))
	return p.kafka.Publish(ctx, TopicRedirectHit, ev)
}
