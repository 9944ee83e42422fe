// Package query derives filtered, sorted, read-only views over a record
// snapshot. Nothing here mutates records; mutation always routes back through
// the store.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/record"
)

// Predicate configures one filter pass. The zero value means "active records,
// any category, no text filter".
type Predicate struct {
	// Categories restricts results to the given set. Empty means no
	// category filtering.
	Categories []catalog.Category

	FavoritesOnly   bool
	IncludeArchived bool

	// Text is matched case-insensitively as a substring against the payload,
	// the category display name, and secondary text (tools, steps). Empty
	// means no text filtering.
	Text string
}

// Option customises filtering.
type Option func(*config)

// WithDisplayName supplies the category display-name lookup used for text
// matching. Without it the raw category identifier is matched.
func WithDisplayName(fn func(catalog.Category) string) Option {
	return func(c *config) {
		c.displayName = fn
	}
}

type config struct {
	displayName func(catalog.Category) string
}

// Filter returns the records satisfying p, preserving input order. Every
// matching record appears exactly once; no match yields an empty slice, not
// an error.
func Filter(records []*record.Record, p Predicate, opts ...Option) []*record.Record {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var cats map[catalog.Category]struct{}
	if len(p.Categories) > 0 {
		cats = make(map[catalog.Category]struct{}, len(p.Categories))
		for _, c := range p.Categories {
			cats[c] = struct{}{}
		}
	}

	text := strings.ToLower(strings.TrimSpace(p.Text))

	out := make([]*record.Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if r.Archived && !p.IncludeArchived {
			continue
		}
		if p.FavoritesOnly && !r.Favorite {
			continue
		}
		if cats != nil {
			if _, ok := cats[r.Category]; !ok {
				continue
			}
		}
		if text != "" && !strings.Contains(r.SearchText(cfg.displayName), text) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortByDisplayText orders records by their display text ascending using a
// locale-aware, case-insensitive comparison. This is the default order for
// list and search views.
func SortByDisplayText(records []*record.Record) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(records[i].DisplayText(), records[j].DisplayText()) < 0
	})
}

// SortByCreatedDesc orders records most-recent-first. History and archive
// views use this.
func SortByCreatedDesc(records []*record.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Created.After(records[j].Created.Time)
	})
}
