package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		wantHour   int
		wantMinute int
	}{
		{"morning with suffix", "10:00 AM", 10, 0},
		{"afternoon suffix is stripped, not converted", "2:00 PM", 2, 0},
		{"24h clock", "14:30", 14, 30},
		{"with seconds", "09:15:30", 9, 15},
		{"empty falls back", "", 10, 0},
		{"garbage falls back", "lunchtime", 10, 0},
		{"whitespace trimmed", "  11:45 AM  ", 11, 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hour, minute := parseClockTime(tc.in)
			assert.Equal(t, tc.wantHour, hour)
			assert.Equal(t, tc.wantMinute, minute)
		})
	}
}

func TestCombineDateAndTime(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got := combineDateAndTime(date, "2:00 PM")
	assert.Equal(t, time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC), got)

	// Clock component of the date itself is ignored.
	dateWithClock := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	got = combineDateAndTime(dateWithClock, "10:00")
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), got)
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2025, 6, 1, 13, 30, 0, 0, time.UTC)
	start, end := dayBounds(date)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), end)
}
