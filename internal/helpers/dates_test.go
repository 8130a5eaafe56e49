package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "same month",
			start:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "four months apart",
			start:    time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
			expected: 4,
		},
		{
			name:     "across a year boundary",
			start:    time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: 3,
		},
		{
			name:     "negative when end precedes start",
			start:    time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected: -3,
		},
		{
			name:     "day of month is ignored",
			start:    time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsBetween(tt.start, tt.end))
		})
	}
}

func TestFirstOfMonth(t *testing.T) {
	midMonth := time.Date(2025, time.March, 17, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), FirstOfMonth(midMonth))

	first := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, first, FirstOfMonth(first))
}

func TestSameYearMonth(t *testing.T) {
	a := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 28, 12, 0, 0, 0, time.UTC)
	assert.True(t, SameYearMonth(a, b))

	// Same month number, different year
	c := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, SameYearMonth(a, c))

	d := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, SameYearMonth(a, d))
}

func TestParseYearMonth(t *testing.T) {
	parsed, err := ParseYearMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), parsed)

	for _, invalid := range []string{"2025-13", "2025/03", "March 2025", ""} {
		_, err := ParseYearMonth(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestFormatYearMonth(t *testing.T) {
	assert.Equal(t, "2025-03", FormatYearMonth(time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("17/03/2025")
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 7, DaysUntil(now, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -5, DaysUntil(now, time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)))

	// Time of day does not shave off a day
	lateEvening := time.Date(2025, time.August, 25, 23, 59, 0, 0, time.UTC)
	nextMorning := time.Date(2025, time.August, 26, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntil(lateEvening, nextMorning))
}
