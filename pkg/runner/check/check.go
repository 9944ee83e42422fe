package check

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/record"
	"tableflip.dev/daybook/pkg/store"
)

// Check toggles one checklist item (a tool or a step) on a record.
type Check struct {
	Journal catalog.Journal
	ID      string
	Tool    int // index into the tool list, -1 when unused
	Step    int // index into the step list, -1 when unused

	Persistence store.Persistence
}

func (n *Check) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("can not check, no id")
	}
	if n.Tool < 0 && n.Step < 0 {
		return errors.New("nothing to check, pass --tool or --step")
	}
	cat, err := catalog.For(n.Journal)
	if err != nil {
		return err
	}
	if !cat.Checklists {
		return errors.New("journal " + string(n.Journal) + " has no checklists")
	}

	s := store.NewStore(ctx, cat, n.Persistence)
	r, err := s.Update(n.ID, func(cur *record.Record) {
		if n.Tool >= 0 {
			cur.ToggleTool(n.Tool)
		}
		if n.Step >= 0 {
			cur.ToggleStep(n.Step)
		}
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Detail(r)
	return nil
}
