package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

// OutputOptions controls how command errors are reported. The flag itself is
// registered once on the root command so every verb inherits it.
type OutputOptions struct {
	JSON bool
}

// HandleError renders err as a JSON object when --json is set, otherwise
// passes it through for cobra's usual reporting.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
