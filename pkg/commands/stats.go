package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/stats"
	"tableflip.dev/daybook/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	window := ""

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streaks, completion, and distributions for a journal",
		Example: `
daybook stats -j mood
daybook stats -j partytask --window 4w
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
			s := stats.Stats{
				Journal:     journal,
				Window:      window,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddJournalArgs(cmd, jo)
	cmd.Flags().StringVarP(&window, "window", "w", "",
		`Weekday pattern window, for example "8w" or "30d".`)

	topLevel.AddCommand(cmd)
}
