package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/stats"
)

const barWidth = 24

var (
	labelStyle = lipgloss.NewStyle().Width(12).Faint(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	numStyle   = lipgloss.NewStyle().Bold(true)
)

// Stats renders a statistics snapshot: headline numbers, the category
// distribution, and the weekday pattern as bar rows.
func (pp *PrettyPrint) Stats(j catalog.Journal, s stats.Snapshot) {
	pp.Title(fmt.Sprintf("%s stats", j))

	fmt.Printf("%s %s\n", labelStyle.Render("records"), numStyle.Render(fmt.Sprintf("%d", s.Total)))
	fmt.Printf("%s %s\n", labelStyle.Render("streak"), numStyle.Render(fmt.Sprintf("%d", s.CurrentStreak)))
	fmt.Printf("%s %s\n", labelStyle.Render("best streak"), numStyle.Render(fmt.Sprintf("%d", s.BestStreak)))
	fmt.Printf("%s %s\n", labelStyle.Render("month"), numStyle.Render(fmt.Sprintf("%d%%", s.MonthlyCompletion)))
	if !s.LastActivity.IsZero() {
		fmt.Printf("%s %s\n", labelStyle.Render("last entry"), s.LastActivity.Local().Format("January 2, 2006"))
	}
	fmt.Println("")

	pp.distribution(j, s.Distribution)
	fmt.Println("")
	pp.weekdays(s.WeeklyPattern)
}

func (pp *PrettyPrint) distribution(j catalog.Journal, dist map[catalog.Category]int) {
	max := 0
	for _, n := range dist {
		if n > max {
			max = n
		}
	}

	// Catalog order keeps the chart stable run to run.
	for _, g := range glyph.Table(j) {
		n := dist[g.Category]
		style := barStyle
		if g.Color != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color))
		}
		fmt.Printf("%s %s %s\n",
			labelStyle.Render(g.Name),
			style.Render(bar(n, max)),
			numStyle.Render(fmt.Sprintf("%d", n)))
	}
}

func (pp *PrettyPrint) weekdays(pattern map[time.Weekday]int) {
	days := make([]time.Weekday, 0, len(pattern))
	for d := range pattern {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	max := 0
	for _, n := range pattern {
		if n > max {
			max = n
		}
	}

	c := color.New(color.Faint)
	_, _ = c.Println("by weekday")
	for _, d := range days {
		n := pattern[d]
		fmt.Printf("%s %s %s\n",
			labelStyle.Render(d.String()),
			barStyle.Render(bar(n, max)),
			numStyle.Render(fmt.Sprintf("%d", n)))
	}
}

func bar(n, max int) string {
	if max == 0 || n == 0 {
		return ""
	}
	w := n * barWidth / max
	if w == 0 {
		w = 1
	}
	return strings.Repeat("█", w)
}
