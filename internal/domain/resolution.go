package domain

// ResolutionKind discriminates the two outcomes of slug resolution.
type ResolutionKind string

const (
	// ResolutionBrand means the slug resolved to a brand and its catalog.
	ResolutionBrand ResolutionKind = "brand"

	// ResolutionProduct means the slug named a product directly and the
	// caller should redirect to the product-detail flow.
	ResolutionProduct ResolutionKind = "product"
)

// ProductRedirect is emitted when a slug matches the product pattern
// ("<digits>-<name>"). Brand resolution is bypassed entirely.
type ProductRedirect struct {
	ProductID int64  `json:"product_id"`
	NameSlug  string `json:"name_slug"`
}

// Resolution is the ephemeral result of resolving one route slug. Exactly one
// of Product or Match is set, according to Kind.
type Resolution struct {
	Kind    ResolutionKind   `json:"kind"`
	Product *ProductRedirect `json:"product,omitempty"`
	Match   *BrandMatch      `json:"match,omitempty"`
	Catalog []KeyProduct     `json:"catalog,omitempty"`
}
