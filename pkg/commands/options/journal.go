// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/catalog"
)

// JournalOptions selects which journal a command operates on.
type JournalOptions struct {
	JournalName string
}

// AddJournalArgs wires the journal selection flag on the provided command.
func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	names := make([]string, 0)
	for _, c := range catalog.All() {
		names = append(names, string(c.Journal))
	}
	cmd.Flags().StringVarP(&o.JournalName, "journal", "j", string(catalog.Gratitude),
		"Specify the journal. One of: "+strings.Join(names, ", ")+".")

	_ = cmd.RegisterFlagCompletionFunc("journal", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// GetJournal parses the selected journal name.
func (o *JournalOptions) GetJournal() (catalog.Journal, error) {
	return catalog.ParseJournal(o.JournalName)
}
