package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductSlug(t *testing.T) {
	redirect := parseProductSlug("123-some-product-name")
	require.NotNil(t, redirect)
	assert.Equal(t, int64(123), redirect.ProductID)
	assert.Equal(t, "some-product-name", redirect.NameSlug)
}

func TestParseProductSlug_NotAProduct(t *testing.T) {
	for _, slug := range []string{
		"dom_1_reproduction_cle.html",
		"abc-123",
		"-leading-hyphen",
		"123",     // digits without hyphen
		"12 3-x",  // space breaks the digit run
		"",
	} {
		assert.Nil(t, parseProductSlug(slug), "slug %q", slug)
	}
}

func TestParseProductSlug_EmptyName(t *testing.T) {
	redirect := parseProductSlug("42-")
	require.NotNil(t, redirect)
	assert.Equal(t, int64(42), redirect.ProductID)
	assert.Equal(t, "", redirect.NameSlug)
}

func TestNormalizeBrandSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"dom_1_reproduction_cle.html", "DOM"},
		{"cles_assa_1_reproduction_cle.html", "CLES ASSA"},
		{"vachette", "VACHETTE"},
		{"heracles_1_reproduction_cle.html", "HERACLES"},
		{"  fichet  ", "FICHET"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeBrandSlug(tt.slug), "slug %q", tt.slug)
	}
}

func TestNormalizeBrandSlug_SuffixOnlyStrippedOnce(t *testing.T) {
	// A slug that is only the suffix normalizes to empty.
	assert.Equal(t, "", normalizeBrandSlug("_1_reproduction_cle.html"))
}
