package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required,min=2"`
	Price int64  `validate:"gte=0"`
	Kind  string `validate:"omitempty,oneof=copy numbered ai_assisted"`
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(&sample{Name: "DOM", Price: 1200, Kind: "copy"}))
}

func TestValidate_Fields(t *testing.T) {
	err := Validate(&sample{Name: "", Price: -1, Kind: "laser"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "must be greater than or equal to 0", fields["Price"])
	assert.Equal(t, "must be one of: copy numbered ai_assisted", fields["Kind"])
}

func TestValidateSlice_ReportsIndex(t *testing.T) {
	items := []sample{
		{Name: "DOM", Price: 100},
		{Name: "", Price: 100},
	}
	err := ValidateSlice(items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}

func TestValidateSlice_Empty(t *testing.T) {
	assert.NoError(t, ValidateSlice([]sample{}))
}

func TestDecodeAndValidate(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"Name":"DOM","Price":100}`))
	var s sample
	require.NoError(t, DecodeAndValidate(r, &s))
	assert.Equal(t, "DOM", s.Name)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{invalid`))
	err := DecodeAndValidate(r, &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
