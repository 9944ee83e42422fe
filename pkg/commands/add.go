package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/add"
	"tableflip.dev/daybook/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	co := &options.ChecklistOptions{}
	category := ""

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a record to a journal",
		Example: `
daybook add -j gratitude -c people "coffee with an old friend"
daybook add -j repair -c plumbing "fix the sink trap" --tool wrench --step "close valve"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("record text required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := jo.GetJournal()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Journal:     journal,
				Category:    category,
				Payload:     strings.Join(args, " "),
				Tools:       co.Tools,
				Steps:       co.Steps,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddChecklistArgs(cmd, co)
	cmd.Flags().StringVarP(&category, "category", "c", "other",
		"Category for the new record.")

	topLevel.AddCommand(cmd)
}
