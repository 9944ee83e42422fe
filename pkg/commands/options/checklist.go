package options

import (
	"github.com/spf13/cobra"
)

// ChecklistOptions captures tool/step checklist flags for journals that
// carry them.
type ChecklistOptions struct {
	Tools []string
	Steps []string
}

func AddChecklistArgs(cmd *cobra.Command, o *ChecklistOptions) {
	cmd.Flags().StringSliceVar(&o.Tools, "tool", nil,
		"Add a tool to the record's checklist. Repeatable.")
	cmd.Flags().StringSliceVar(&o.Steps, "step", nil,
		"Add a step to the record's checklist. Repeatable.")
}
