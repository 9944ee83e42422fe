package timeutil

import "time"

const layoutISO = "2006-01-02"

// DayKey renders the local calendar day of t as an ISO date string. Two
// timestamps share a DayKey exactly when they fall on the same local day.
func DayKey(t time.Time) string {
	return t.Local().Format(layoutISO)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

// SameMonth reports whether a and b fall in the same local calendar month.
func SameMonth(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month()
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	tl := t.Local()
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 0, 0, 0, 0, tl.Location())
}

// DaysInMonth returns the number of calendar days in t's local month.
func DaysInMonth(t time.Time) int {
	tl := t.Local()
	first := time.Date(tl.Year(), tl.Month(), 1, 0, 0, 0, 0, tl.Location())
	return first.AddDate(0, 1, -1).Day()
}

// PrevDay steps back one calendar day. AddDate handles DST transitions and
// month boundaries, which naive 24h subtraction does not.
func PrevDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -1)
}
