package query

import (
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/record"
)

func rec(category catalog.Category, payload string) *record.Record {
	r := record.New(catalog.PartyTask, category, payload)
	r.Created = record.Now()
	return r
}

func TestFilterDefaultsExcludeArchived(t *testing.T) {
	active := rec("singing", "karaoke opener")
	archived := rec("dancing", "conga line")
	archived.Archived = true

	got := Filter([]*record.Record{active, archived}, Predicate{})
	if len(got) != 1 || got[0] != active {
		t.Fatalf("expected only the active record, got %d", len(got))
	}

	got = Filter([]*record.Record{active, archived}, Predicate{IncludeArchived: true})
	if len(got) != 2 {
		t.Fatalf("expected both records with IncludeArchived, got %d", len(got))
	}
}

func TestFilterByCategorySet(t *testing.T) {
	a := rec("singing", "solo")
	b := rec("dancing", "pairs")
	c := rec("funny", "roast")

	got := Filter([]*record.Record{a, b, c}, Predicate{
		Categories: []catalog.Category{"singing", "funny"},
	})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("unexpected category filter result: %d records", len(got))
	}

	// Empty category set means no filtering.
	got = Filter([]*record.Record{a, b, c}, Predicate{})
	if len(got) != 3 {
		t.Fatalf("empty category set must not filter, got %d", len(got))
	}
}

func TestFilterFavoritesOnly(t *testing.T) {
	a := rec("singing", "solo")
	b := rec("dancing", "pairs")
	b.Favorite = true

	got := Filter([]*record.Record{a, b}, Predicate{FavoritesOnly: true})
	if len(got) != 1 || got[0] != b {
		t.Fatalf("expected only the favorite, got %d", len(got))
	}
}

func TestFilterTextMatchesSecondaryFields(t *testing.T) {
	a := rec("singing", "karaoke opener")
	b := record.New(catalog.Repair, "plumbing", "kitchen sink")
	b.SetTools([]string{"Pipe Wrench"})

	records := []*record.Record{a, b}

	got := Filter(records, Predicate{Text: "KARAOKE"})
	if len(got) != 1 || got[0] != a {
		t.Fatalf("case-insensitive payload match failed")
	}

	got = Filter(records, Predicate{Text: "pipe wrench"})
	if len(got) != 1 || got[0] != b {
		t.Fatalf("tool list match failed")
	}

	// Empty text means no text filtering, not match-nothing.
	got = Filter(records, Predicate{Text: "   "})
	if len(got) != 2 {
		t.Fatalf("blank text must not filter, got %d", len(got))
	}

	got = Filter(records, Predicate{Text: "no such thing"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestFilterMatchesDisplayName(t *testing.T) {
	a := rec("singing", "opener")
	got := Filter([]*record.Record{a}, Predicate{Text: "vocal"},
		WithDisplayName(func(c catalog.Category) string { return "Vocal Performance" }))
	if len(got) != 1 {
		t.Fatalf("expected display-name match")
	}
}

func TestFilterEveryResultSatisfiesPredicate(t *testing.T) {
	records := []*record.Record{}
	for i, payload := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		r := rec("singing", payload)
		if i%2 == 0 {
			r.Favorite = true
		}
		if i == 3 {
			r.Archived = true
		}
		records = append(records, r)
	}

	p := Predicate{FavoritesOnly: true}
	got := Filter(records, p)

	seen := map[*record.Record]bool{}
	for _, r := range got {
		if !r.Favorite || r.Archived {
			t.Fatalf("result %q does not satisfy predicate", r.Payload)
		}
		if seen[r] {
			t.Fatalf("record %q appears twice", r.Payload)
		}
		seen[r] = true
	}
	for _, r := range records {
		if r.Favorite && !r.Archived && !seen[r] {
			t.Fatalf("matching record %q omitted", r.Payload)
		}
	}
}

func TestSortByDisplayTextIsCaseInsensitive(t *testing.T) {
	records := []*record.Record{
		rec("singing", "banana song"),
		rec("singing", "Apple medley"),
		rec("singing", "cherry duet"),
	}
	SortByDisplayText(records)

	want := []string{"Apple medley", "banana song", "cherry duet"}
	for i, w := range want {
		if records[i].Payload != w {
			t.Fatalf("position %d: got %q, want %q", i, records[i].Payload, w)
		}
	}
}

func TestSortByCreatedDesc(t *testing.T) {
	old := rec("singing", "old")
	old.Created = record.Timestamp{Time: time.Now().Add(-48 * time.Hour)}
	mid := rec("singing", "mid")
	mid.Created = record.Timestamp{Time: time.Now().Add(-24 * time.Hour)}
	fresh := rec("singing", "fresh")

	records := []*record.Record{old, fresh, mid}
	SortByCreatedDesc(records)

	if records[0] != fresh || records[1] != mid || records[2] != old {
		t.Fatalf("unexpected order: %q, %q, %q", records[0].Payload, records[1].Payload, records[2].Payload)
	}
}
