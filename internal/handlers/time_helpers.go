package handlers

import (
	"errors"
	"time"
)

var errInvalidDate = errors.New("invalid date")

// Dates arrive either as a bare day or as the desktop client's unzoned
// datetime ("2025-06-01T00:00:00"). Both anchor in the clinic's location;
// any clock component is ignored in favor of the separate time field.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseClinicDate(dateStr string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, dateStr, loc); err == nil {
			if t.IsZero() {
				return time.Time{}, errInvalidDate
			}
			return t, nil
		}
	}
	return time.Time{}, errInvalidDate
}
