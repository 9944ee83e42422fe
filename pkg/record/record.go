// Package record defines the single entry type shared by every daybook
// journal: one user-created note/task/mood with a category, a bounded text
// payload, status flags, and optional checklists.
package record

import (
	"strings"

	"tableflip.dev/daybook/pkg/catalog"
)

// Record is one journal entry. The store owns the canonical copy; query,
// stats, and wheel operate on snapshots and never write fields directly.
type Record struct {
	ID      string           `json:"id"`
	Journal catalog.Journal  `json:"journal"`

	Category catalog.Category `json:"category"`
	Payload  string           `json:"payload,omitempty"`

	// Parallel checklists for journals that carry them. ToolsDone and
	// StepsDone are always sized to match Tools and Steps.
	Tools     []string `json:"tools,omitempty"`
	Steps     []string `json:"steps,omitempty"`
	ToolsDone []bool   `json:"toolsDone,omitempty"`
	StepsDone []bool   `json:"stepsDone,omitempty"`

	Favorite bool `json:"favorite,omitempty"`
	Archived bool `json:"archived,omitempty"`

	Created Timestamp `json:"created"`
	Updated Timestamp `json:"updated"`
}

func New(journal catalog.Journal, category catalog.Category, payload string) *Record {
	return &Record{
		Journal:  journal,
		Category: category,
		Payload:  payload,
	}
}

// Truncate bounds s to limit runes. Over-long input is cut silently, per the
// journals' save behavior; a non-positive limit means unbounded.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// DisplayText is the field list views sort and search on.
func (r *Record) DisplayText() string {
	return r.Payload
}

// SetTools replaces the tool checklist, resetting done flags and keeping the
// parallel slices the same length.
func (r *Record) SetTools(tools []string) {
	r.Tools = append([]string(nil), tools...)
	r.ToolsDone = make([]bool, len(tools))
}

// SetSteps replaces the step checklist, resetting done flags.
func (r *Record) SetSteps(steps []string) {
	r.Steps = append([]string(nil), steps...)
	r.StepsDone = make([]bool, len(steps))
}

// ToggleTool flips the done flag at index i. Out-of-range toggles are no-ops
// so a stale UI row cannot panic the session.
func (r *Record) ToggleTool(i int) {
	if i < 0 || i >= len(r.ToolsDone) {
		return
	}
	r.ToolsDone[i] = !r.ToolsDone[i]
}

// ToggleStep flips the done flag at index i.
func (r *Record) ToggleStep(i int) {
	if i < 0 || i >= len(r.StepsDone) {
		return
	}
	r.StepsDone[i] = !r.StepsDone[i]
}

// Clone returns a deep copy so callers can hand out read-only snapshots.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.Tools = append([]string(nil), r.Tools...)
	c.Steps = append([]string(nil), r.Steps...)
	c.ToolsDone = append([]bool(nil), r.ToolsDone...)
	c.StepsDone = append([]bool(nil), r.StepsDone...)
	return &c
}

// SearchText flattens the record's searchable fields into one lowercase blob.
func (r *Record) SearchText(displayName func(catalog.Category) string) string {
	parts := []string{r.Payload}
	if displayName != nil {
		parts = append(parts, displayName(r.Category))
	} else {
		parts = append(parts, string(r.Category))
	}
	parts = append(parts, r.Tools...)
	parts = append(parts, r.Steps...)
	return strings.ToLower(strings.Join(parts, "\n"))
}
