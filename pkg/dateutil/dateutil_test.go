package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2024, true},
		{2025, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2028, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DaysInMonth(tt.year, tt.month), "%d-%s", tt.year, tt.month)
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 15, DaysBetween(from, to))
	assert.Equal(t, 0, DaysBetween(from, from))

	// Spans leap-year February.
	assert.Equal(t, 29, DaysBetween(
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	))
}
