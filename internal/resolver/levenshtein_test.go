package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein_Basics(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "DOM", "DOM", 0},
		{"case insensitive", "dom", "DOM", 0},
		{"empty vs string", "", "KABA", 4},
		{"string vs empty", "KABA", "", 4},
		{"both empty", "", "", 0},
		{"single substitution", "RONIS", "RONIX", 1},
		{"insertion", "JPM", "JPMX", 1},
		{"deletion", "PICARD", "PICAR", 1},
		{"typo pair", "CLEZ ASA", "CLES ASSA", 2},
		{"unrelated", "ABUS", "MOTTURA", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func TestLevenshtein_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"VACHETTE", "VACHETE"},
		{"CLES ASSA", "CLEZ ASA"},
		{"", "FICHET"},
		{"HERACLES", "heracles"},
	}

	for _, p := range pairs {
		assert.Equal(t, levenshtein(p[0], p[1]), levenshtein(p[1], p[0]), "distance(%q,%q)", p[0], p[1])
	}
}

func TestLevenshtein_EmptyAgainstLength(t *testing.T) {
	for _, s := range []string{"A", "DOM", "CLES ASSA", "MUL-T-LOCK"} {
		assert.Equal(t, len([]rune(s)), levenshtein("", s))
	}
}
