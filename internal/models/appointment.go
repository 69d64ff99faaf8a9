package models

import "time"

// Appointment is the single canonical appointments table. Both booking and
// availability read and write the same start_time/end_time columns.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"appointmentId"`

	PatientID uint  `gorm:"not null" json:"patientId"`
	DoctorID  *uint `json:"doctorId,omitempty"`
	RoomID    *uint `json:"roomId,omitempty"`

	StartTime time.Time `gorm:"not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`

	Title string `gorm:"size:100" json:"procedure,omitempty"`
	Notes string `gorm:"size:255" json:"notes,omitempty"`

	ConfirmationCode string `gorm:"size:36" json:"confirmationCode,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
