package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/GmNoman/dentned-api/internal/audit"
	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/models"
)

// Compile-time check
var _ domain.Repository = (*mockClinicRepo)(nil)

// mockClinicRepo fakes the booking repository with an in-memory patient
// table; everything else answers like a freshly bootstrapped clinic.
type mockClinicRepo struct {
	patients     map[string]*models.Patient
	nextID       uint
	appointments []models.Appointment
	doctors      []models.Doctor
}

func newMockClinicRepo() *mockClinicRepo {
	return &mockClinicRepo{
		patients: map[string]*models.Patient{},
		nextID:   1,
		doctors:  []models.Doctor{{ID: 1, FirstName: "Default", LastName: "Dentist"}},
	}
}

func (m *mockClinicRepo) FindPatientByName(ctx context.Context, first, last string) (*models.Patient, error) {
	return m.patients[first+"|"+last], nil
}

func (m *mockClinicRepo) CreatePatient(ctx context.Context, p *models.Patient) error {
	p.ID = m.nextID
	m.nextID++
	m.patients[p.FirstName+"|"+p.LastName] = p
	return nil
}

func (m *mockClinicRepo) UpdatePatient(ctx context.Context, p *models.Patient) error {
	m.patients[p.FirstName+"|"+p.LastName] = p
	return nil
}

func (m *mockClinicRepo) EnsureDefaultDoctor(ctx context.Context) (uint, bool, error) {
	return 1, false, nil
}

func (m *mockClinicRepo) EnsureDefaultRoom(ctx context.Context) (uint, bool, error) {
	return 1, false, nil
}

func (m *mockClinicRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return m.doctors, nil
}

func (m *mockClinicRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(m.appointments) + 1)
	m.appointments = append(m.appointments, *ap)
	return nil
}

func (m *mockClinicRepo) ListAppointmentsForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if !ap.StartTime.Before(dayStart) && ap.StartTime.Before(dayEnd) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (m *mockClinicRepo) patientByID(id uint) *models.Patient {
	for _, p := range m.patients {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (m *mockClinicRepo) record(ap models.Appointment) domain.AppointmentRecord {
	rec := domain.AppointmentRecord{
		ID:        ap.ID,
		PatientID: ap.PatientID,
		DoctorID:  ap.DoctorID,
		RoomID:    ap.RoomID,
		StartTime: ap.StartTime,
		EndTime:   ap.EndTime,
		Title:     ap.Title,
		Notes:     ap.Notes,
	}
	if p := m.patientByID(ap.PatientID); p != nil {
		rec.PatientFirstName = p.FirstName
		rec.PatientLastName = p.LastName
	}
	return rec
}

func (m *mockClinicRepo) ListAppointments(ctx context.Context) ([]domain.AppointmentRecord, error) {
	out := make([]domain.AppointmentRecord, 0, len(m.appointments))
	for _, ap := range m.appointments {
		out = append(out, m.record(ap))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out, nil
}

func (m *mockClinicRepo) GetAppointment(ctx context.Context, id uint) (*domain.AppointmentRecord, error) {
	for _, ap := range m.appointments {
		if ap.ID == id {
			rec := m.record(ap)
			return &rec, nil
		}
	}
	return nil, nil
}

func testAuditDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
