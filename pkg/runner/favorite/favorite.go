package favorite

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

type Favorite struct {
	Journal catalog.Journal
	ID      string

	Persistence store.Persistence
}

func (n *Favorite) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("can not favorite, no id")
	}
	cat, err := catalog.For(n.Journal)
	if err != nil {
		return err
	}

	s := store.NewStore(ctx, cat, n.Persistence)
	r, err := s.ToggleFavorite(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(string(n.Journal))
	pp.Records(r)
	return nil
}
