package stats

import (
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/record"
)

func onDay(t *testing.T, category catalog.Category, y int, m time.Month, d int) *record.Record {
	t.Helper()
	r := record.New(catalog.PartyTask, category, "entry")
	r.Created = record.Timestamp{Time: time.Date(y, m, d, 12, 0, 0, 0, time.Local)}
	r.Updated = r.Created
	return r
}

func TestDistributionZeroFills(t *testing.T) {
	cat, err := catalog.For(catalog.PartyTask)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	records := []*record.Record{}
	for i := 0; i < 5; i++ {
		records = append(records, onDay(t, "singing", 2024, 1, i+1))
	}
	for i := 0; i < 3; i++ {
		records = append(records, onDay(t, "dancing", 2024, 1, i+10))
	}

	dist := Distribution(cat.Categories, records)

	want := map[catalog.Category]int{
		"singing": 5, "dancing": 3, "animals": 0, "funny": 0, "other": 0,
	}
	if len(dist) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(dist))
	}
	total := 0
	for c, n := range want {
		if dist[c] != n {
			t.Fatalf("distribution[%s]=%d, want %d", c, dist[c], n)
		}
		total += dist[c]
	}
	if total != len(records) {
		t.Fatalf("distribution total %d, want %d", total, len(records))
	}
}

func TestCurrentStreakTodayIsRigidAnchor(t *testing.T) {
	records := []*record.Record{
		onDay(t, "singing", 2024, 1, 1),
		onDay(t, "singing", 2024, 1, 2),
	}

	// No record on the anchor day: streak is 0 even though yesterday has one.
	today := time.Date(2024, 1, 3, 9, 0, 0, 0, time.Local)
	if got := CurrentStreak(records, today); got != 0 {
		t.Fatalf("CurrentStreak=%d, want 0", got)
	}

	// Anchored on the last recorded day the run is visible.
	today = time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	if got := CurrentStreak(records, today); got != 2 {
		t.Fatalf("CurrentStreak=%d, want 2", got)
	}

	if got := BestStreak(records); got != 2 {
		t.Fatalf("BestStreak=%d, want 2", got)
	}
}

func TestBestStreakFindsHistoricRun(t *testing.T) {
	records := []*record.Record{
		onDay(t, "singing", 2024, 2, 1),
		onDay(t, "singing", 2024, 2, 2),
		onDay(t, "singing", 2024, 2, 3),
		onDay(t, "singing", 2024, 2, 4),
		// gap
		onDay(t, "singing", 2024, 2, 10),
		onDay(t, "singing", 2024, 2, 11),
	}
	if got := BestStreak(records); got != 4 {
		t.Fatalf("BestStreak=%d, want 4", got)
	}
}

func TestBestStreakCrossesMonthBoundary(t *testing.T) {
	records := []*record.Record{
		onDay(t, "singing", 2024, 2, 28),
		onDay(t, "singing", 2024, 2, 29), // leap day
		onDay(t, "singing", 2024, 3, 1),
	}
	if got := BestStreak(records); got != 3 {
		t.Fatalf("BestStreak=%d, want 3", got)
	}
}

func TestBestStreakNeverBelowCurrent(t *testing.T) {
	records := []*record.Record{
		onDay(t, "singing", 2024, 5, 1),
		onDay(t, "singing", 2024, 5, 2),
		onDay(t, "singing", 2024, 5, 3),
	}
	for day := 1; day <= 10; day++ {
		today := time.Date(2024, 5, day, 8, 0, 0, 0, time.Local)
		if BestStreak(records) < CurrentStreak(records, today) {
			t.Fatalf("best streak below current streak for day %d", day)
		}
	}
}

func TestMultipleRecordsOneDayCountOnce(t *testing.T) {
	records := []*record.Record{
		onDay(t, "singing", 2024, 6, 1),
		onDay(t, "dancing", 2024, 6, 1),
		onDay(t, "funny", 2024, 6, 2),
	}
	if got := BestStreak(records); got != 2 {
		t.Fatalf("BestStreak=%d, want 2 (duplicate days must collapse)", got)
	}
}

func TestMonthlyCompletionUsesFullMonthDenominator(t *testing.T) {
	records := []*record.Record{}
	for d := 1; d <= 15; d++ {
		records = append(records, onDay(t, "singing", 2024, 4, d))
	}
	// April has 30 days; 15 recorded days is 50% regardless of when in the
	// month we ask.
	early := time.Date(2024, 4, 16, 0, 0, 0, 0, time.Local)
	if got := MonthlyCompletion(records, early); got != 50 {
		t.Fatalf("MonthlyCompletion=%d, want 50", got)
	}

	// Rounding to nearest: 1/31 of January is 3.2% -> 3.
	jan := []*record.Record{onDay(t, "singing", 2024, 1, 10)}
	if got := MonthlyCompletion(jan, time.Date(2024, 1, 20, 0, 0, 0, 0, time.Local)); got != 3 {
		t.Fatalf("MonthlyCompletion=%d, want 3", got)
	}

	// Other months do not leak in.
	if got := MonthlyCompletion(records, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)); got != 0 {
		t.Fatalf("MonthlyCompletion=%d for empty month, want 0", got)
	}
}

func TestWeeklyPattern(t *testing.T) {
	today := time.Date(2024, 7, 15, 10, 0, 0, 0, time.Local) // a Monday

	records := []*record.Record{
		onDay(t, "singing", 2024, 7, 15), // Monday
		onDay(t, "singing", 2024, 7, 8),  // previous Monday
		onDay(t, "dancing", 2024, 7, 10), // Wednesday
		onDay(t, "funny", 2024, 1, 1),    // far outside the window
	}

	pattern := WeeklyPattern(records, today, 8)

	if len(pattern) != 7 {
		t.Fatalf("expected all 7 weekdays present, got %d", len(pattern))
	}
	if pattern[time.Monday] != 2 {
		t.Fatalf("Monday=%d, want 2", pattern[time.Monday])
	}
	if pattern[time.Wednesday] != 1 {
		t.Fatalf("Wednesday=%d, want 1", pattern[time.Wednesday])
	}
	if pattern[time.Friday] != 0 {
		t.Fatalf("Friday=%d, want 0", pattern[time.Friday])
	}
}

func TestComputeSnapshot(t *testing.T) {
	cat, err := catalog.For(catalog.PartyTask)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	records := []*record.Record{
		onDay(t, "singing", 2024, 3, 1),
		onDay(t, "dancing", 2024, 3, 2),
	}
	today := time.Date(2024, 3, 2, 18, 0, 0, 0, time.Local)

	s := Compute(cat, records, today)
	if s.Total != 2 {
		t.Fatalf("Total=%d, want 2", s.Total)
	}
	if s.CurrentStreak != 2 || s.BestStreak != 2 {
		t.Fatalf("streaks=%d/%d, want 2/2", s.CurrentStreak, s.BestStreak)
	}
	if s.MonthlyCompletion != 6 { // 2/31 rounds to 6
		t.Fatalf("MonthlyCompletion=%d, want 6", s.MonthlyCompletion)
	}
	if !s.LastActivity.Equal(records[1].Updated.Time) {
		t.Fatalf("LastActivity=%v, want %v", s.LastActivity, records[1].Updated)
	}
}

func TestEmptyCollection(t *testing.T) {
	today := time.Now()
	if got := CurrentStreak(nil, today); got != 0 {
		t.Fatalf("CurrentStreak on empty=%d", got)
	}
	if got := BestStreak(nil); got != 0 {
		t.Fatalf("BestStreak on empty=%d", got)
	}
	if got := MonthlyCompletion(nil, today); got != 0 {
		t.Fatalf("MonthlyCompletion on empty=%d", got)
	}
}
