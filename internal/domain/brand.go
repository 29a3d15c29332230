package domain

// Brand is a key manufacturer known to the catalog service. Brands are owned
// by the external registry and read-only here.
type Brand struct {
	ID   int64   `json:"id" validate:"required"`
	Name string  `json:"nom" validate:"required"`
	Logo *string `json:"logo,omitempty"`
}

// BrandMatch is the outcome of matching a route slug against the brand
// registry. Distance is the Levenshtein distance between the candidate and
// the matched name, 0 for exact or allow-listed matches.
type BrandMatch struct {
	Brand    Brand `json:"brand"`
	Distance int   `json:"distance"`
	Fuzzy    bool  `json:"fuzzy"`
}

// KnownBrands is the fixed allow-list of brand names the storefront links to
// directly. A normalized slug equal to one of these skips the brand-list
// fetch and queries the catalog by exact name.
var KnownBrands = []string{
	"ABUS",
	"ANKER",
	"BRICARD",
	"CAVERS",
	"CLES ASSA",
	"DENY",
	"ERREBI",
	"FICHET",
	"FONTAINE",
	"FTH",
	"HERACLES",
	"ISEO",
	"IZIS",
	"JPM",
	"KABA",
	"LAPERCHE",
	"MERONI",
	"METALUX",
	"MOTTURA",
	"MUEL",
	"PICARD",
	"POLLUX",
	"RONIS",
	"TESA",
	"VACHETTE",
}

var knownBrandSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(KnownBrands))
	for _, name := range KnownBrands {
		set[name] = struct{}{}
	}
	return set
}()

// IsKnownBrand reports whether the candidate exactly equals an allow-listed
// brand name. The candidate must already be normalized (uppercased).
func IsKnownBrand(candidate string) bool {
	_, ok := knownBrandSet[candidate]
	return ok
}
