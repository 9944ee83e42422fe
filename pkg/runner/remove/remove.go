package remove

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

type Remove struct {
	Journal catalog.Journal
	ID      string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("can not remove, no id")
	}
	cat, err := catalog.For(n.Journal)
	if err != nil {
		return err
	}

	s := store.NewStore(ctx, cat, n.Persistence)

	// Remove is idempotent; an already-gone id is fine.
	if err := s.Remove(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(string(n.Journal), len(s.All()))
	pp.Records(s.All()...)
	return nil
}
