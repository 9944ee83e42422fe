package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/query"
)

// FilterOptions captures the list-view filter flags.
type FilterOptions struct {
	Categories []string
	Favorites  bool
	Archived   bool
	Search     string
}

// AddFilterArgs wires filtering flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringSliceVarP(&o.Categories, "category", "c", nil,
		"Restrict to the given categories. Repeatable; empty means all.")
	cmd.Flags().BoolVar(&o.Favorites, "favorites", false,
		"Only favorite records.")
	cmd.Flags().BoolVarP(&o.Archived, "archived", "a", false,
		"Include archived records.")
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Case-insensitive substring search.")
}

// Predicate converts the flags into a query predicate, validating category
// names against the journal's catalog.
func (o *FilterOptions) Predicate(cat catalog.Catalog) (query.Predicate, error) {
	p := query.Predicate{
		FavoritesOnly:   o.Favorites,
		IncludeArchived: o.Archived,
		Text:            o.Search,
	}
	for _, raw := range o.Categories {
		c, err := cat.ParseCategory(raw)
		if err != nil {
			return query.Predicate{}, err
		}
		p.Categories = append(p.Categories, c)
	}
	return p, nil
}
