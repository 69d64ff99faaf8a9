package booking

import (
	"strings"
	"time"
)

const fallbackHour = 10

// parseClockTime strips literal " AM"/" PM" suffixes and parses what is
// left as a 24h clock. The designator is discarded, not converted, so
// "2:00 PM" books 02:00 — long-standing behavior the desktop client
// depends on. Anything unparseable falls back to 10:00.
func parseClockTime(s string) (hour, minute int) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " AM", "")
	s = strings.ReplaceAll(s, " PM", "")

	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute()
		}
	}

	return fallbackHour, 0
}

// combineDateAndTime anchors the parsed clock time on the calendar day of
// date, in date's location.
func combineDateAndTime(date time.Time, timeStr string) time.Time {
	hour, minute := parseClockTime(timeStr)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, minute, 0, 0,
		date.Location(),
	)
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}
