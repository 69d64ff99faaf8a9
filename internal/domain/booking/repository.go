package booking

import (
	"context"
	"time"

	"github.com/GmNoman/dentned-api/internal/models"
)

type Repository interface {
	// -------- Patient --------
	FindPatientByName(
		ctx context.Context,
		firstName string,
		lastName string,
	) (*models.Patient, error)

	CreatePatient(
		ctx context.Context,
		patient *models.Patient,
	) error

	UpdatePatient(
		ctx context.Context,
		patient *models.Patient,
	) error

	// -------- Bootstrap defaults --------
	EnsureDefaultDoctor(
		ctx context.Context,
	) (id uint, created bool, err error)

	EnsureDefaultRoom(
		ctx context.Context,
	) (id uint, created bool, err error)

	// -------- Doctor --------
	ListDoctors(
		ctx context.Context,
	) ([]models.Doctor, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (read projections) --------
	ListAppointments(
		ctx context.Context,
	) ([]AppointmentRecord, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*AppointmentRecord, error)
}

// AppointmentRecord is the appointment row joined with its patient's name,
// newest-first on the list path. GetAppointment returns nil when the id is
// unknown.
type AppointmentRecord struct {
	ID        uint
	PatientID uint
	DoctorID  *uint
	RoomID    *uint
	StartTime time.Time
	EndTime   time.Time
	Title     string
	Notes     string

	PatientFirstName string
	PatientLastName  string
}
