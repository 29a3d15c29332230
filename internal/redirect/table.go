// Package redirect implements the static legacy-URL redirection table.
//
// The table maps exact legacy path+querystring strings to canonical
// destination URLs. Lookups are literal: case-sensitive, percent-encoding
// compared as-is, no normalization of any kind.
package redirect

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cleservice/storefront-resolver/pkg/validator"
)

// Entry is one source-to-destination mapping.
type Entry struct {
	SourcePath     string `json:"source_path" validate:"required"`
	DestinationURL string `json:"destination_url" validate:"required,url"`
}

// Table is an immutable redirect lookup built at process start.
type Table struct {
	entries map[string]string
}

// NewTable builds a Table from an ordered entry list. When the same source
// path appears more than once, the later entry wins.
func NewTable(entries []Entry) *Table {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.SourcePath] = e.DestinationURL
	}
	return &Table{entries: m}
}

// NewDefaultTable builds a Table from the compiled-in entry set, optionally
// extended by entries loaded from the JSON file at path (entries from the
// file override compiled-in ones for the same source path).
func NewDefaultTable(path string) (*Table, error) {
	entries := defaultEntries
	if path != "" {
		extra, err := loadEntries(path)
		if err != nil {
			return nil, err
		}
		entries = append(append([]Entry{}, defaultEntries...), extra...)
	}
	return NewTable(entries), nil
}

// Resolve returns the destination URL for an exact source-path match. The
// second return value is false on a miss; a miss is not an error.
func (t *Table) Resolve(pathWithQuery string) (string, bool) {
	dest, ok := t.entries[pathWithQuery]
	return dest, ok
}

// Len returns the number of distinct source paths in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

func loadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read redirect entries: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse redirect entries: %w", err)
	}
	if err := validator.ValidateSlice(entries); err != nil {
		return nil, fmt.Errorf("validate redirect entries: %w", err)
	}
	return entries, nil
}
