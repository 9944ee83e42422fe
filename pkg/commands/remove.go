package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/remove"
	"tableflip.dev/daybook/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a record by id",
		Example: `
daybook remove -j partytask --id 171dff69f8b99dca
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := jo.GetJournal()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				Journal:     journal,
				ID:          io.ID,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
