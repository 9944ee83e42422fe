package timeutil

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 14, 8, 0, 0, 0, time.Local)
	night := time.Date(2024, 3, 14, 23, 59, 0, 0, time.Local)
	next := time.Date(2024, 3, 15, 0, 1, 0, 0, time.Local)

	if !SameDay(morning, night) {
		t.Fatalf("expected %v and %v on the same day", morning, night)
	}
	if SameDay(night, next) {
		t.Fatalf("did not expect %v and %v on the same day", night, next)
	}
}

func TestDayKeyMatchesSameDay(t *testing.T) {
	a := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	b := time.Date(2024, 1, 2, 20, 0, 0, 0, time.Local)
	if DayKey(a) != DayKey(b) {
		t.Fatalf("expected equal day keys, got %s and %s", DayKey(a), DayKey(b))
	}
	if DayKey(a) != "2024-01-02" {
		t.Fatalf("unexpected day key: %s", DayKey(a))
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		when time.Time
		want int
	}{
		{time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local), 29},
		{time.Date(2023, 2, 10, 0, 0, 0, 0, time.Local), 28},
		{time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local), 30},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local), 31},
	}
	for _, tc := range tests {
		if got := DaysInMonth(tc.when); got != tc.want {
			t.Fatalf("DaysInMonth(%v)=%d, want %d", tc.when, got, tc.want)
		}
	}
}

func TestPrevDayCrossesMonth(t *testing.T) {
	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	prev := PrevDay(first)
	if prev.Year() != 2024 || prev.Month() != 2 || prev.Day() != 29 {
		t.Fatalf("PrevDay(%v)=%v, want 2024-02-29", first, prev)
	}
	if prev.Hour() != 0 {
		t.Fatalf("expected midnight, got %v", prev)
	}
}
