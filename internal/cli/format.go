package cli

import (
	"fmt"
	"time"
)

// FormatMonth renders a month cell.
// e.g. 2025-03
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}

// FormatDate renders a date cell.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatPercent formats percentage points.
// e.g. 12.3 -> "12.30%"
func FormatPercent(points float64) string {
	return fmt.Sprintf("%.2f%%", points)
}

// FormatSignedPercent formats percentage points with an explicit sign.
// e.g. 12.3 -> "+12.30%"
func FormatSignedPercent(points float64) string {
	return fmt.Sprintf("%+.2f%%", points)
}

// FormatRate formats a monthly index rate given as a decimal fraction.
// e.g. 0.042 -> "4.20%"
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// Mark returns mark for true and an empty cell for false.
func Mark(cond bool, mark string) string {
	if cond {
		return mark
	}
	return ""
}
