package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/record"
)

func TestPersistenceRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	s := NewStore(ctx, mustCatalog(t, catalog.Repair), p)
	r := record.New(catalog.Repair, "plumbing", "replace kitchen tap washer")
	r.SetTools([]string{"wrench", "washer kit"})
	r.SetSteps([]string{"shut off water", "swap washer", "test for drips"})

	saved, err := s.Add(r)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Update(saved.ID, func(cur *record.Record) {
		cur.ToggleStep(0)
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	// A second store over the same persistence must see the same records.
	reloaded := NewStore(ctx, mustCatalog(t, catalog.Repair), p)
	all := reloaded.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 record after reload, got %d", len(all))
	}
	got := all[0]
	if got.ID != saved.ID {
		t.Fatalf("id changed across reload: %s vs %s", got.ID, saved.ID)
	}
	if got.Payload != "replace kitchen tap washer" {
		t.Fatalf("payload changed across reload: %q", got.Payload)
	}
	if len(got.Tools) != 2 || len(got.ToolsDone) != 2 {
		t.Fatalf("checklists lost across reload: %+v", got)
	}
	if !got.StepsDone[0] || got.StepsDone[1] {
		t.Fatalf("step flags lost across reload: %v", got.StepsDone)
	}
	if !got.Created.SameDay(time.Now()) {
		t.Fatalf("created timestamp lost across reload: %v", got.Created)
	}

	// Re-storing an unchanged load is a no-op on the representation.
	if err := p.Store(got); err != nil {
		t.Fatalf("re-store: %v", err)
	}
	again := p.List(ctx, catalog.Repair)
	if len(again) != 1 || again[0].ID != saved.ID {
		t.Fatalf("idempotent save broke the collection: %d records", len(again))
	}
}

func TestListIsScopedToJournal(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	g := record.New(catalog.Gratitude, "nature", "first frost this morning")
	g.Created = record.Now()
	if err := p.Store(g); err != nil {
		t.Fatalf("store gratitude: %v", err)
	}
	m := record.New(catalog.Mood, "okay", "")
	m.Created = record.Now()
	if err := p.Store(m); err != nil {
		t.Fatalf("store mood: %v", err)
	}

	if got := len(p.List(ctx, catalog.Gratitude)); got != 1 {
		t.Fatalf("expected 1 gratitude record, got %d", got)
	}
	if got := len(p.ListAll(ctx)); got != 2 {
		t.Fatalf("expected 2 records total, got %d", got)
	}
}
