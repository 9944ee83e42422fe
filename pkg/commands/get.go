package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/get"
	"tableflip.dev/daybook/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	history := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List a journal's records",
		Example: `
daybook get -j partytask
daybook get -j gratitude --favorites --search coffee
daybook get -j mood --history
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
			s := get.Get{
				ShowID:      io.ShowID,
				Journal:     journal,
				Filter:      *fo,
				History:     history,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&history, "history", false,
		"Show the history view: archived included, most recent first.")

	topLevel.AddCommand(cmd)
}
