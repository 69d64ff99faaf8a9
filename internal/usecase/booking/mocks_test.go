package booking

import (
	"context"
	"time"

	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/models"
)

// Compile-time check to ensure MockClinicRepository implements domain.Repository
var _ domain.Repository = (*MockClinicRepository)(nil)

// MockClinicRepository is a func-field mock of the booking repository.
// Unset fields fall back to an empty-clinic default so individual tests
// only wire what they assert on.
type MockClinicRepository struct {
	FindPatientByNameFunc      func(ctx context.Context, first, last string) (*models.Patient, error)
	CreatePatientFunc          func(ctx context.Context, patient *models.Patient) error
	UpdatePatientFunc          func(ctx context.Context, patient *models.Patient) error
	EnsureDefaultDoctorFunc    func(ctx context.Context) (uint, bool, error)
	EnsureDefaultRoomFunc      func(ctx context.Context) (uint, bool, error)
	ListDoctorsFunc            func(ctx context.Context) ([]models.Doctor, error)
	CreateAppointmentFunc      func(ctx context.Context, ap *models.Appointment) error
	ListAppointmentsForDayFunc func(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	ListAppointmentsFunc       func(ctx context.Context) ([]domain.AppointmentRecord, error)
	GetAppointmentFunc         func(ctx context.Context, id uint) (*domain.AppointmentRecord, error)

	CreatePatientCalls     int
	UpdatePatientCalls     int
	CreateAppointmentCalls int
}

func (m *MockClinicRepository) FindPatientByName(ctx context.Context, first, last string) (*models.Patient, error) {
	if m.FindPatientByNameFunc != nil {
		return m.FindPatientByNameFunc(ctx, first, last)
	}
	return nil, nil
}

func (m *MockClinicRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	m.CreatePatientCalls++
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(ctx, patient)
	}
	patient.ID = 1
	return nil
}

func (m *MockClinicRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	m.UpdatePatientCalls++
	if m.UpdatePatientFunc != nil {
		return m.UpdatePatientFunc(ctx, patient)
	}
	return nil
}

func (m *MockClinicRepository) EnsureDefaultDoctor(ctx context.Context) (uint, bool, error) {
	if m.EnsureDefaultDoctorFunc != nil {
		return m.EnsureDefaultDoctorFunc(ctx)
	}
	return 1, false, nil
}

func (m *MockClinicRepository) EnsureDefaultRoom(ctx context.Context) (uint, bool, error) {
	if m.EnsureDefaultRoomFunc != nil {
		return m.EnsureDefaultRoomFunc(ctx)
	}
	return 1, false, nil
}

func (m *MockClinicRepository) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	if m.ListDoctorsFunc != nil {
		return m.ListDoctorsFunc(ctx)
	}
	return nil, nil
}

func (m *MockClinicRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	m.CreateAppointmentCalls++
	if m.CreateAppointmentFunc != nil {
		return m.CreateAppointmentFunc(ctx, ap)
	}
	ap.ID = 1
	return nil
}

func (m *MockClinicRepository) ListAppointmentsForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	if m.ListAppointmentsForDayFunc != nil {
		return m.ListAppointmentsForDayFunc(ctx, dayStart, dayEnd)
	}
	return nil, nil
}

func (m *MockClinicRepository) ListAppointments(ctx context.Context) ([]domain.AppointmentRecord, error) {
	if m.ListAppointmentsFunc != nil {
		return m.ListAppointmentsFunc(ctx)
	}
	return nil, nil
}

func (m *MockClinicRepository) GetAppointment(ctx context.Context, id uint) (*domain.AppointmentRecord, error) {
	if m.GetAppointmentFunc != nil {
		return m.GetAppointmentFunc(ctx, id)
	}
	return nil, nil
}
