package add

import (
	"context"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/record"
	"tableflip.dev/daybook/pkg/store"
)

type Add struct {
	Journal  catalog.Journal
	Category string
	Payload  string
	Tools    []string
	Steps    []string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	cat, err := catalog.For(n.Journal)
	if err != nil {
		return err
	}
	category, err := cat.ParseCategory(n.Category)
	if err != nil {
		return err
	}

	s := store.NewStore(ctx, cat, n.Persistence)

	r := record.New(n.Journal, category, n.Payload)
	if len(n.Tools) > 0 {
		r.SetTools(n.Tools)
	}
	if len(n.Steps) > 0 {
		r.SetSteps(n.Steps)
	}

	saved, err := s.Add(r)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(string(n.Journal))
	pp.Records(saved)
	return nil
}
