package spin

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/query"
	"tableflip.dev/daybook/pkg/record"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/wheel"
)

// Spin picks one random record from the filtered active set, avoiding the
// previous pick when one is given.
type Spin struct {
	Journal    catalog.Journal
	Filter     options.FilterOptions
	PreviousID string

	Persistence store.Persistence
}

func (n *Spin) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not spin, no persistence")
	}
	cat, err := catalog.For(n.Journal)
	if err != nil {
		return err
	}
	pred, err := n.Filter.Predicate(cat)
	if err != nil {
		return err
	}

	s := store.NewStore(ctx, cat, n.Persistence)
	candidates := query.Filter(s.All(), pred, query.WithDisplayName(glyph.DisplayName(n.Journal)))
	if len(candidates) == 0 {
		return errors.New("the wheel is empty, add some records first")
	}

	picker := wheel.New(nil)
	pick, angle, err := picker.Spin(candidates, findByID(candidates, n.PreviousID))
	if err != nil {
		return err
	}

	c := color.New(color.Faint)
	_, _ = c.Printf("the wheel stops at %.0f°\n", angle)

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("%s wheel", n.Journal))
	pp.Records(pick)
	return nil
}

func findByID(records []*record.Record, id string) *record.Record {
	if id == "" {
		return nil
	}
	for _, r := range records {
		if r.ID == id {
			return r
		}
	}
	return nil
}
