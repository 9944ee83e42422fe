// Package catalog defines the journals daybook knows about and the closed
// category enumeration each journal accepts.
package catalog

import (
	"fmt"
	"strings"
)

// Journal identifies one of the daybook record collections.
type Journal string

const (
	Mood      Journal = "mood"
	Gratitude Journal = "gratitude"
	PartyTask Journal = "partytask"
	Repair    Journal = "repair"
	DayNote   Journal = "daynote"
)

// Category classifies a record within its journal. The engine only ever
// compares category identifiers; display names, symbols, and colors live in
// the glyph package.
type Category string

// Catalog describes the shape of one journal's records.
type Catalog struct {
	Journal    Journal
	Categories []Category

	// PayloadLimit is the maximum payload length in runes. Longer input is
	// truncated, not rejected.
	PayloadLimit int

	// RequirePayload rejects empty or whitespace-only payloads on add.
	RequirePayload bool

	// DatePartitioned journals hold at most one record per local calendar
	// day; adding on an occupied day updates the existing record.
	DatePartitioned bool

	// Checklists marks journals whose records carry parallel tool/step
	// lists with per-item done flags.
	Checklists bool
}

var catalogs = []Catalog{
	{
		Journal:         Mood,
		Categories:      []Category{"great", "good", "okay", "bad", "awful"},
		PayloadLimit:    200,
		DatePartitioned: true,
	},
	{
		Journal:        Gratitude,
		Categories:     []Category{"people", "health", "nature", "work", "other"},
		PayloadLimit:   200,
		RequirePayload: true,
	},
	{
		Journal:        PartyTask,
		Categories:     []Category{"singing", "dancing", "animals", "funny", "other"},
		PayloadLimit:   280,
		RequirePayload: true,
		Checklists:     true,
	},
	{
		Journal:        Repair,
		Categories:     []Category{"plumbing", "electrical", "painting", "furniture", "outdoor"},
		PayloadLimit:   500,
		RequirePayload: true,
		Checklists:     true,
	},
	{
		Journal:         DayNote,
		Categories:      []Category{"work", "personal", "travel", "health", "other"},
		PayloadLimit:    280,
		DatePartitioned: true,
	},
}

// All returns every known journal catalog.
func All() []Catalog {
	out := make([]Catalog, len(catalogs))
	copy(out, catalogs)
	return out
}

// For returns the catalog for the given journal.
func For(j Journal) (Catalog, error) {
	for _, c := range catalogs {
		if c.Journal == j {
			return c, nil
		}
	}
	return Catalog{}, fmt.Errorf("catalog: unknown journal %q", j)
}

// ParseJournal converts a string to a Journal or returns an error for
// unknown values.
func ParseJournal(raw string) (Journal, error) {
	j := Journal(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range catalogs {
		if c.Journal == j {
			return j, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown journal %q", raw)
}

// MustJournal parses the input and panics on error. Intended for tests/config.
func MustJournal(raw string) Journal {
	j, err := ParseJournal(raw)
	if err != nil {
		panic(err)
	}
	return j
}

// Contains reports whether cat is part of this catalog's enumeration.
func (c Catalog) Contains(cat Category) bool {
	for _, candidate := range c.Categories {
		if candidate == cat {
			return true
		}
	}
	return false
}

// ParseCategory converts a string into one of this catalog's categories.
func (c Catalog) ParseCategory(raw string) (Category, error) {
	cat := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.Contains(cat) {
		return cat, nil
	}
	return "", fmt.Errorf("catalog: journal %q has no category %q", c.Journal, raw)
}
