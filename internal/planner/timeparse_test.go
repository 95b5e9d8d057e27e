package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"07:30", 450, true},
		{"7:30", 450, true},
		{"19:05", 1145, true},
		{"0730", 450, true},
		{"7", 420, true},
		{"19", 1140, true},
		{"3pm", 900, true},
		{"3 pm", 900, true},
		{"11:30am", 690, true},
		{"12pm", 720, true},
		{"00:00", 0, true},
		{"", 0, false},
		{"later", 0, false},
		{"25:00", 0, false},
		{"12:60", 0, false},
		{"7h30", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseClock(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2026-09-02", 2026)
	require.True(t, ok)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 2, got.Day())

	got, ok = ParseDate("02/09/2026", 2026)
	require.True(t, ok)
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 2, got.Day())

	// Day-and-month shorthand resolves against the reference year.
	got, ok = ParseDate("15.04", 2026)
	require.True(t, ok)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 15, got.Day())

	for _, bad := range []string{"", "soon", "40.04", "15.13", "2026-9"} {
		_, ok := ParseDate(bad, 2026)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, daysBetween(testWeekday, testWeekday))
	assert.Equal(t, 3, daysBetween(testWeekday, testWeekday.AddDate(0, 0, 3)))
	assert.Equal(t, -2, daysBetween(testWeekday, testWeekday.AddDate(0, 0, -2)))

	// Time of day is ignored; only calendar dates count.
	morning := mkTime(2026, time.September, 2, 6, 0)
	night := mkTime(2026, time.September, 3, 23, 59)
	assert.Equal(t, 1, daysBetween(morning, night))
}
