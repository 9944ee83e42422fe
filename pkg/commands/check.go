package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/check"
	"tableflip.dev/daybook/pkg/store"
)

func addCheck(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	io := &options.IDOptions{}
	tool := -1
	step := -1

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Toggle a checklist item on a record",
		Example: `
daybook check -j repair --id 171dff69f8b99dca --tool 0
daybook check -j repair --id 171dff69f8b99dca --step 2
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
			s := check.Check{
				Journal:     journal,
				ID:          io.ID,
				Tool:        tool,
				Step:        step,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddIDArgs(cmd, io)
	cmd.Flags().IntVar(&tool, "tool", -1, "Index of the tool to toggle.")
	cmd.Flags().IntVar(&step, "step", -1, "Index of the step to toggle.")

	topLevel.AddCommand(cmd)
}
