package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/spin"
	"tableflip.dev/daybook/pkg/store"
)

func addSpin(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	fo := &options.FilterOptions{}
	previous := ""

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin the wheel: pick a random record",
		Example: `
daybook spin -j partytask
daybook spin -j partytask -c singing --previous 171dff69f8b99dca
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
			s := spin.Spin{
				Journal:     journal,
				Filter:      *fo,
				PreviousID:  previous,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddFilterArgs(cmd, fo)
	cmd.Flags().StringVar(&previous, "previous", "",
		"Id of the previous pick, avoided on this spin when possible.")

	topLevel.AddCommand(cmd)
}
