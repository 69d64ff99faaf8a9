package booking

import "time"

// The clinic books against a fixed slot grid: half-hour aligned starts
// between opening and last call. Appointments themselves always run one
// hour, so a booked appointment shadows every slot it overlaps.
const (
	OpenHour      = 9
	LastSlotHour  = 16
	SlotInterval  = 30 * time.Minute
	VisitDuration = time.Hour
)

// SlotStarts returns every bookable slot start for the given calendar day,
// half-hour steps from 09:00 through 16:30.
func SlotStarts(day time.Time) []time.Time {
	first := time.Date(day.Year(), day.Month(), day.Day(), OpenHour, 0, 0, 0, day.Location())
	last := time.Date(day.Year(), day.Month(), day.Day(), LastSlotHour, 30, 0, 0, day.Location())

	var starts []time.Time
	for cur := first; !cur.After(last); cur = cur.Add(SlotInterval) {
		starts = append(starts, cur)
	}
	return starts
}

// HourSlotStarts returns the hour-aligned subset used by the per-doctor
// availability query: 09:00 through 16:00.
func HourSlotStarts(day time.Time) []time.Time {
	first := time.Date(day.Year(), day.Month(), day.Day(), OpenHour, 0, 0, 0, day.Location())
	last := time.Date(day.Year(), day.Month(), day.Day(), LastSlotHour, 0, 0, 0, day.Location())

	var starts []time.Time
	for cur := first; !cur.After(last); cur = cur.Add(time.Hour) {
		starts = append(starts, cur)
	}
	return starts
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
