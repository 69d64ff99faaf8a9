package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/models"
)

type ClinicGormRepository struct {
	db *gorm.DB
}

func NewClinicGormRepository(db *gorm.DB) *ClinicGormRepository {
	return &ClinicGormRepository{db: db}
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *ClinicGormRepository) FindPatientByName(
	ctx context.Context,
	firstName string,
	lastName string,
) (*models.Patient, error) {

	// Names are not unique; ORDER BY id pins the first inserted row so
	// repeat lookups always land on the same patient.
	var patient models.Patient
	err := r.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Order("id ASC").
		First(&patient).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *ClinicGormRepository) CreatePatient(
	ctx context.Context,
	patient *models.Patient,
) error {

	// Blank names still get a row; the legacy importer produced these.
	if patient.FirstName == "" {
		patient.FirstName = "Unknown"
	}
	if patient.LastName == "" {
		patient.LastName = "Patient"
	}

	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *ClinicGormRepository) UpdatePatient(
	ctx context.Context,
	patient *models.Patient,
) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

// --------------------------------------------------
// Bootstrap defaults
// --------------------------------------------------

// EnsureDefaultDoctor is idempotent for sequential callers only. Two
// concurrent first-time callers can both pass the empty check and insert
// two default doctors; the table carries no unique constraint to stop it.
func (r *ClinicGormRepository) EnsureDefaultDoctor(
	ctx context.Context,
) (uint, bool, error) {

	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Order("id ASC").
		First(&doctor).Error

	if err == nil {
		return doctor.ID, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, false, err
	}

	doctor = models.Doctor{
		FirstName: "Default",
		LastName:  "Dentist",
		Specialty: "General Dentist",
		Username:  "default",
		Password:  "password123",
	}

	if err := r.db.WithContext(ctx).Create(&doctor).Error; err != nil {
		return 0, false, err
	}

	return doctor.ID, true, nil
}

func (r *ClinicGormRepository) EnsureDefaultRoom(
	ctx context.Context,
) (uint, bool, error) {

	var room models.Room
	err := r.db.WithContext(ctx).
		Order("id ASC").
		First(&room).Error

	if err == nil {
		return room.ID, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, false, err
	}

	room = models.Room{
		Name:  "Exam Room 1",
		Color: "B",
	}

	if err := r.db.WithContext(ctx).Create(&room).Error; err != nil {
		return 0, false, err
	}

	return room.ID, true, nil
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *ClinicGormRepository) ListDoctors(
	ctx context.Context,
) ([]models.Doctor, error) {

	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ClinicGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ClinicGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

const appointmentProjection = `appointments.id, appointments.patient_id,
	appointments.doctor_id, appointments.room_id, appointments.start_time,
	appointments.end_time, appointments.title, appointments.notes,
	patients.first_name AS patient_first_name,
	patients.last_name AS patient_last_name`

func (r *ClinicGormRepository) ListAppointments(
	ctx context.Context,
) ([]domain.AppointmentRecord, error) {

	var records []domain.AppointmentRecord
	if err := r.db.WithContext(ctx).
		Table("appointments").
		Select(appointmentProjection).
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Order("appointments.start_time DESC").
		Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *ClinicGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*domain.AppointmentRecord, error) {

	var records []domain.AppointmentRecord
	if err := r.db.WithContext(ctx).
		Table("appointments").
		Select(appointmentProjection).
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("appointments.id = ?", id).
		Limit(1).
		Scan(&records).Error; err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Compile-time check
var _ domain.Repository = (*ClinicGormRepository)(nil)
