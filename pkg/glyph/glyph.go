// Package glyph maps category identifiers to their presentation data: a
// symbol, a display name, and a terminal color. The engine packages never
// import this; it exists so rendering code has one lookup table instead of
// per-view switch statements.
package glyph

import (
	"fmt"

	"tableflip.dev/daybook/pkg/catalog"
)

type Glyph struct {
	Category catalog.Category
	Symbol   string
	Name     string
	Color    string // lipgloss-compatible ANSI color code
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var tables = map[catalog.Journal][]Glyph{
	catalog.Mood: {
		{Category: "great", Symbol: "★", Name: "Great", Color: "10"},
		{Category: "good", Symbol: "☀", Name: "Good", Color: "2"},
		{Category: "okay", Symbol: "–", Name: "Okay", Color: "3"},
		{Category: "bad", Symbol: "☁", Name: "Bad", Color: "11"},
		{Category: "awful", Symbol: "☂", Name: "Awful", Color: "9"},
	},
	catalog.Gratitude: {
		{Category: "people", Symbol: "♥", Name: "People", Color: "13"},
		{Category: "health", Symbol: "✚", Name: "Health", Color: "10"},
		{Category: "nature", Symbol: "❀", Name: "Nature", Color: "2"},
		{Category: "work", Symbol: "✦", Name: "Work", Color: "12"},
		{Category: "other", Symbol: "·", Name: "Other", Color: "7"},
	},
	catalog.PartyTask: {
		{Category: "singing", Symbol: "♪", Name: "Singing", Color: "13"},
		{Category: "dancing", Symbol: "♯", Name: "Dancing", Color: "12"},
		{Category: "animals", Symbol: "♘", Name: "Animals", Color: "3"},
		{Category: "funny", Symbol: "☺", Name: "Funny", Color: "11"},
		{Category: "other", Symbol: "·", Name: "Other", Color: "7"},
	},
	catalog.Repair: {
		{Category: "plumbing", Symbol: "◉", Name: "Plumbing", Color: "12"},
		{Category: "electrical", Symbol: "⚡", Name: "Electrical", Color: "11"},
		{Category: "painting", Symbol: "▨", Name: "Painting", Color: "13"},
		{Category: "furniture", Symbol: "▣", Name: "Furniture", Color: "3"},
		{Category: "outdoor", Symbol: "❧", Name: "Outdoor", Color: "2"},
	},
	catalog.DayNote: {
		{Category: "work", Symbol: "✦", Name: "Work", Color: "12"},
		{Category: "personal", Symbol: "●", Name: "Personal", Color: "13"},
		{Category: "travel", Symbol: "➤", Name: "Travel", Color: "14"},
		{Category: "health", Symbol: "✚", Name: "Health", Color: "10"},
		{Category: "other", Symbol: "·", Name: "Other", Color: "7"},
	},
}

// For returns the glyph for a category within a journal. Unknown categories
// get a neutral placeholder so rendering never fails on stale data.
func For(j catalog.Journal, c catalog.Category) Glyph {
	for _, g := range tables[j] {
		if g.Category == c {
			return g
		}
	}
	return Glyph{Category: c, Symbol: "·", Name: string(c), Color: "7"}
}

// Table returns the full glyph table for a journal, in catalog order.
func Table(j catalog.Journal) []Glyph {
	out := make([]Glyph, len(tables[j]))
	copy(out, tables[j])
	return out
}

// DisplayName resolves a category's human-readable name for a journal.
// Suitable as the query engine's display-name hook.
func DisplayName(j catalog.Journal) func(catalog.Category) string {
	return func(c catalog.Category) string {
		return For(j, c).Name
	}
}

func (g Glyph) String() string {
	return g.Symbol
}
