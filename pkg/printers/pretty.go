package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/record"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" record")
	default:
		_, _ = c.Println(" records")
	}
}

// Records prints one line per record: glyph, flags, payload.
func (pp *PrettyPrint) Records(records ...*record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, r := range records {
		if pp.ShowID {
			id := r.ID
			if len(id) > len(spacing)-2 {
				id = id[:len(spacing)-2]
			}
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		g := glyph.For(r.Journal, r.Category)
		line := fmt.Sprintf("%s %s", g.Symbol, r.Payload)
		if r.Favorite {
			line += " ♥"
		}
		if r.Archived {
			line = glyph.Strike(line)
		}
		_, _ = t.Println(line)
	}
	_, _ = t.Println("")
}

// Detail prints one record with its checklists in a table.
func (pp *PrettyPrint) Detail(r *record.Record) {
	if r == nil {
		return
	}
	g := glyph.For(r.Journal, r.Category)
	pp.Title(fmt.Sprintf("%s %s", g.Symbol, g.Name))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("payload", r.Payload)
	tbl.AddRow("created", r.Created.String())
	tbl.AddRow("updated", r.Updated.String())
	if r.Favorite {
		tbl.AddRow("favorite", "yes")
	}
	if r.Archived {
		tbl.AddRow("archived", "yes")
	}
	for i, tool := range r.Tools {
		tbl.AddRow(checkbox(r.ToolsDone, i), "tool: "+tool)
	}
	for i, step := range r.Steps {
		tbl.AddRow(checkbox(r.StepsDone, i), "step: "+step)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func checkbox(done []bool, i int) string {
	if i < len(done) && done[i] {
		return "[x]"
	}
	return "[ ]"
}
