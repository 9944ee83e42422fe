package archive

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

// Archive toggles a record between the active and archived partitions; the
// same runner backs both `archive` and `restore`.
type Archive struct {
	Journal catalog.Journal
	ID      string

	Persistence store.Persistence
}

func (n *Archive) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("can not archive, no id")
	}
	cat, err := catalog.For(n.Journal)
	if err != nil {
		return err
	}

	s := store.NewStore(ctx, cat, n.Persistence)
	r, err := s.ToggleArchive(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(string(n.Journal))
	pp.Records(r)
	return nil
}
