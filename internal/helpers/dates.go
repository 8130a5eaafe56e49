package helpers

import (
	"fmt"
	"time"
)

// YearMonthLayout is the wire format for index months ("2025-03").
const YearMonthLayout = "2006-01"

// MonthsBetween returns the number of calendar months from start to end.
// Negative when end precedes start.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// FirstOfMonth normalizes a date to midnight UTC on the first of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameYearMonth reports whether two dates fall in the same calendar month.
func SameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ParseYearMonth parses "2025-03" into midnight UTC on the first of that month.
func ParseYearMonth(s string) (time.Time, error) {
	t, err := time.Parse(YearMonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year-month %q: %w", s, err)
	}
	return t, nil
}

// FormatYearMonth renders a date as "2025-03".
func FormatYearMonth(t time.Time) string {
	return t.Format(YearMonthLayout)
}

// ParseDate parses a "2006-01-02" calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DaysUntil returns whole days from now until target, both normalized to
// midnight. Negative when target is in the past. Callers pass now explicitly
// so derived values stay testable.
func DaysUntil(now, target time.Time) int {
	now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(now).Hours() / 24)
}
