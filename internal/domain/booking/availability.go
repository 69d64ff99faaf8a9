package booking

import "time"

type AvailabilityInput struct {
	Date      time.Time
	StartTime string // "HH:mm" floor; empty means start of day
}

// DoctorSlot is one free hour for one doctor.
type DoctorSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	DoctorID  uint   `json:"doctorId"`
}
