// Package catalog provides the error-code and message lookup used to
// populate calendar failures.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Symbolic keys of the calendar failure kinds.
const (
	InvalidField       = "INVALID_FIELD"
	ArithmeticOverflow = "ARITHMETIC_OVERFLOW"
	NullArgument       = "NULL_ARGUMENT"
)

// Entry is a single error code with its human-readable message.
type Entry struct {
	Code    string `yaml:"code"`
	Message string `yaml:"message"`
}

// Catalog is a read-only lookup of error entries by symbolic key.
type Catalog struct {
	entries map[string]Entry
}

var defaultEntries = map[string]Entry{
	InvalidField: {
		Code:    "COK-UTL-CAL-001",
		Message: "Invalid argument: field is not supported",
	},
	ArithmeticOverflow: {
		Code:    "COK-UTL-CAL-002",
		Message: "Calendar value too large for accurate calculations",
	},
	NullArgument: {
		Code:    "COK-UTL-CAL-003",
		Message: "Date value must not be null",
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(nil)
}

// New returns a catalog holding the given entries. Required keys missing
// from entries are taken from the built-in table.
func New(entries map[string]Entry) *Catalog {
	merged := make(map[string]Entry, len(defaultEntries)+len(entries))
	for key, entry := range defaultEntries {
		merged[key] = entry
	}
	for key, entry := range entries {
		merged[key] = entry
	}
	return &Catalog{entries: merged}
}

// Lookup returns the entry registered for key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	if c == nil {
		entry, ok := defaultEntries[key]
		return entry, ok
	}
	entry, ok := c.entries[key]
	return entry, ok
}

// Len returns the number of registered keys.
func (c *Catalog) Len() int {
	if c == nil {
		return len(defaultEntries)
	}
	return len(c.entries)
}

type document struct {
	Errors map[string]Entry `yaml:"errors"`
}

// Load parses a YAML catalog of the form
//
//	errors:
//	  INVALID_FIELD:
//	    code: COK-UTL-CAL-001
//	    message: Invalid argument
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for key, entry := range doc.Errors {
		if entry.Code == "" {
			return nil, fmt.Errorf("catalog entry %s: empty code", key)
		}
	}
	return New(doc.Errors), nil
}

// LoadFile reads a YAML catalog from the named file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}
