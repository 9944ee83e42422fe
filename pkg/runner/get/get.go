package get

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/viewmodel"
)

type Get struct {
	ShowID  bool
	Journal catalog.Journal
	Filter  options.FilterOptions
	History bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
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
	vm := viewmodel.New(s, viewmodel.WithDisplayName(glyph.DisplayName(n.Journal)))
	vm.SetFilters(pred)

	records := vm.Records()
	if n.History {
		records = vm.History()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount(string(n.Journal), len(records))
	pp.Records(records...)
	return nil
}
