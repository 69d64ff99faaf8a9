package dto

import "time"

// AppointmentListDTO is the appointment+patient-name projection returned
// by the appointment read endpoints.
type AppointmentListDTO struct {
	AppointmentID uint      `json:"appointmentId"`
	PatientID     uint      `json:"patientId"`
	PatientName   string    `json:"patientName"`
	DoctorID      *uint     `json:"doctorId,omitempty"`
	RoomID        *uint     `json:"roomId,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Procedure     string    `json:"procedure,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}
