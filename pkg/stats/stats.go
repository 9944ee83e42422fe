// Package stats computes derived statistics over a record snapshot:
// distributions, day streaks, completion percentages, and weekday patterns.
// Every function is pure; callers recompute after each mutation instead of
// caching across them.
package stats

import (
	"math"
	"sort"
	"time"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/record"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Snapshot is the full derived view for one journal. It is recomputed on
// demand and never persisted.
type Snapshot struct {
	Total             int
	Distribution      map[catalog.Category]int
	CurrentStreak     int
	BestStreak        int
	MonthlyCompletion int
	WeeklyPattern     map[time.Weekday]int
	LastActivity      time.Time
}

// Compute assembles a snapshot for the given records as of today.
func Compute(cat catalog.Catalog, records []*record.Record, today time.Time) Snapshot {
	s := Snapshot{
		Total:             len(records),
		Distribution:      Distribution(cat.Categories, records),
		CurrentStreak:     CurrentStreak(records, today),
		BestStreak:        BestStreak(records),
		MonthlyCompletion: MonthlyCompletion(records, today),
		WeeklyPattern:     WeeklyPattern(records, today, DefaultPatternWeeks),
	}
	for _, r := range records {
		if r.Updated.After(s.LastActivity) {
			s.LastActivity = r.Updated.Time
		}
	}
	return s
}

// Distribution maps every category in the enumeration to its record count.
// Categories with no records are present with a zero count so charts keep a
// stable shape. The counts sum to len(records) when every record carries a
// catalog category.
func Distribution(categories []catalog.Category, records []*record.Record) map[catalog.Category]int {
	dist := make(map[catalog.Category]int, len(categories))
	for _, c := range categories {
		dist[c] = 0
	}
	for _, r := range records {
		dist[r.Category]++
	}
	return dist
}

// recordedDays collects the distinct local calendar days carrying at least
// one record. Only existence matters, not content.
func recordedDays(records []*record.Record) map[string]struct{} {
	days := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.Created.IsZero() {
			continue
		}
		days[timeutil.DayKey(r.Created.Time)] = struct{}{}
	}
	return days
}

// CurrentStreak counts consecutive recorded days ending at today. Today is
// the rigid anchor: a blank today means the streak is 0 even if yesterday
// has an entry.
func CurrentStreak(records []*record.Record, today time.Time) int {
	days := recordedDays(records)

	streak := 0
	day := timeutil.StartOfDay(today)
	for {
		if _, ok := days[timeutil.DayKey(day)]; !ok {
			return streak
		}
		streak++
		day = timeutil.PrevDay(day)
	}
}

// BestStreak returns the longest run of consecutive recorded days anywhere
// in the collection's history.
func BestStreak(records []*record.Record) int {
	days := recordedDays(records)
	if len(days) == 0 {
		return 0
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, run := 1, 1
	prev, _ := time.ParseInLocation("2006-01-02", keys[0], time.Local)
	for _, k := range keys[1:] {
		cur, err := time.ParseInLocation("2006-01-02", k, time.Local)
		if err != nil {
			continue
		}
		if timeutil.SameDay(cur, prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = cur
	}
	return best
}

// MonthlyCompletion returns recorded days over the full calendar length of
// month, as a percentage rounded to the nearest integer. The denominator is
// the whole month even while it is in progress, so the figure never exceeds
// 100 and never shrinks as days pass.
func MonthlyCompletion(records []*record.Record, month time.Time) int {
	total := timeutil.DaysInMonth(month)
	if total == 0 {
		return 0
	}

	recorded := 0
	for day := range recordedDays(records) {
		t, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err != nil {
			continue
		}
		if timeutil.SameMonth(t, month) {
			recorded++
		}
	}

	return int(math.Round(float64(recorded) / float64(total) * 100))
}

// DefaultPatternWeeks is the window WeeklyPattern uses when callers have no
// preference.
const DefaultPatternWeeks = 8

// WeeklyPattern counts records per weekday over the most recent weeks
// (ending at today, inclusive). Every weekday is present in the result, zero
// counts included.
func WeeklyPattern(records []*record.Record, today time.Time, weeks int) map[time.Weekday]int {
	if weeks <= 0 {
		weeks = DefaultPatternWeeks
	}
	end := timeutil.StartOfDay(today).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -7*weeks)

	pattern := make(map[time.Weekday]int, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		pattern[d] = 0
	}
	for _, r := range records {
		if r.Created.IsZero() {
			continue
		}
		created := r.Created.Local()
		if created.Before(start) || !created.Before(end) {
			continue
		}
		pattern[created.Weekday()]++
	}
	return pattern
}
