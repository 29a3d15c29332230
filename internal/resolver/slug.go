package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cleservice/storefront-resolver/internal/domain"
)

// brandSlugSuffix is the legacy suffix carried by brand landing pages,
// e.g. "dom_1_reproduction_cle.html".
const brandSlugSuffix = "_1_reproduction_cle.html"

// productSlugRegexp matches slugs that name a product directly: a numeric
// identifier, a hyphen, then the product name slug.
var productSlugRegexp = regexp.MustCompile(`^(\d+)-(.*)$`)

// parseProductSlug returns the product redirect signal when the slug matches
// the product pattern, or nil when it does not.
func parseProductSlug(slug string) *domain.ProductRedirect {
	m := productSlugRegexp.FindStringSubmatch(slug)
	if m == nil {
		return nil
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// Digits too large for int64; treat as a brand slug rather than
		// fail the request.
		return nil
	}

	return &domain.ProductRedirect{ProductID: id, NameSlug: m[2]}
}

// normalizeBrandSlug turns a legacy brand slug into a candidate brand name:
// the fixed suffix is stripped when present, underscores become spaces, and
// the result is trimmed and uppercased.
func normalizeBrandSlug(slug string) string {
	s := strings.TrimSuffix(slug, brandSlugSuffix)
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(strings.TrimSpace(s))
}
