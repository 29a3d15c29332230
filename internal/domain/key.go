package domain

// Reproduction type constants. They mirror the values stored by the catalog
// service for the "typeReproduction" field.
const (
	ReproductionCopy       = "copy"
	ReproductionNumbered   = "numbered"
	ReproductionAIAssisted = "ai_assisted"
)

// KeyProduct is one reproducible key in a brand's catalog. Prices are in
// euro cents. Read-only from this service's perspective.
type KeyProduct struct {
	ID               int64   `json:"id" validate:"required"`
	Name             string  `json:"nom" validate:"required"`
	BrandName        string  `json:"marque" validate:"required"`
	Price            int64   `json:"prix" validate:"gte=0"`
	AlternatePrice   *int64  `json:"prixSansCartePropriete,omitempty" validate:"omitempty,gte=0"`
	ReferenceBlank   *string `json:"referenceEbauche,omitempty"`
	ReproductionType string  `json:"typeReproduction" validate:"omitempty,oneof=copy numbered ai_assisted"`
	RequiresPasskey  bool    `json:"besoinNumeroCle"`
	PasskeyPrice     *int64  `json:"prixCleAPasse,omitempty" validate:"omitempty,gte=0"`
}

// ValidReproductionTypes returns the set of valid reproduction types.
func ValidReproductionTypes() []string {
	return []string{ReproductionCopy, ReproductionNumbered, ReproductionAIAssisted}
}
