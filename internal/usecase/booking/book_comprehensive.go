package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GmNoman/dentned-api/internal/audit"
	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/models"
)

// Placeholder values substituted for any contact or insurance field the
// request leaves blank.
const (
	placeholderPhone             = "555-0100"
	placeholderInsuranceProvider = "Delta Dental"
	placeholderInsurancePolicy   = "DD-0000000"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookComprehensiveInput struct {
	FirstName string
	LastName  string
	BirthDate *time.Time

	Phone string
	Email string

	InsuranceProvider     string
	InsurancePolicyNumber string

	PreferredDoctorID *uint

	AppointmentDate time.Time
	AppointmentTime string

	Procedure string
	Notes     string
}

type BookComprehensiveResult struct {
	AppointmentID uint
	PatientID     uint
	DoctorID      uint
	RoomID        uint

	ConfirmationCode string
	NextSteps        []string
}

// ======================================================
// USE CASE
// ======================================================

type BookComprehensive struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookComprehensive(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookComprehensive {
	return &BookComprehensive{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookComprehensive) Execute(
	ctx context.Context,
	in BookComprehensiveInput,
) (*BookComprehensiveResult, error) {

	phone := in.Phone
	if phone == "" {
		phone = placeholderPhone
	}

	email := in.Email
	if email == "" {
		email = strings.ToLower(fmt.Sprintf(
			"%s.%s@example.com",
			in.FirstName,
			in.LastName,
		))
	}

	provider := in.InsuranceProvider
	if provider == "" {
		provider = placeholderInsuranceProvider
	}

	policy := in.InsurancePolicyNumber
	if policy == "" {
		policy = placeholderInsurancePolicy
	}

	// De-dup by (first, last): a repeat booking updates the existing
	// row in place instead of inserting a second patient.
	patient, err := uc.repo.FindPatientByName(ctx, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		patient = &models.Patient{
			FirstName:             in.FirstName,
			LastName:              in.LastName,
			BirthDate:             in.BirthDate,
			Phone:                 phone,
			Email:                 email,
			InsuranceProvider:     provider,
			InsurancePolicyNumber: policy,
			Notes:                 in.Notes,
		}
		if err := uc.repo.CreatePatient(ctx, patient); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "patient_created",
			Entity:   "patient",
			EntityID: &patient.ID,
		})
	} else {
		patient.Phone = phone
		patient.Email = email
		patient.InsuranceProvider = provider
		patient.InsurancePolicyNumber = policy
		if in.BirthDate != nil {
			patient.BirthDate = in.BirthDate
		}
		if in.Notes != "" {
			patient.Notes = in.Notes
		}

		if err := uc.repo.UpdatePatient(ctx, patient); err != nil {
			return nil, err
		}
	}

	// Doctor: honor the request's preference, else fall back to the
	// first doctor on file (bootstrapped when the table is empty).
	var doctorID uint
	if in.PreferredDoctorID != nil {
		doctorID = *in.PreferredDoctorID
	} else {
		id, created, err := uc.repo.EnsureDefaultDoctor(ctx)
		if err != nil {
			return nil, err
		}
		doctorID = id
		if created {
			uc.audit.Dispatch(audit.Event{
				Action:   "default_doctor_created",
				Entity:   "doctor",
				EntityID: &doctorID,
			})
		}
	}

	// Room: always the first room on file; the request has no say.
	roomID, roomCreated, err := uc.repo.EnsureDefaultRoom(ctx)
	if err != nil {
		return nil, err
	}
	if roomCreated {
		uc.audit.Dispatch(audit.Event{
			Action:   "default_room_created",
			Entity:   "room",
			EntityID: &roomID,
		})
	}

	start := combineDateAndTime(in.AppointmentDate, in.AppointmentTime)
	end := start.Add(domain.VisitDuration)

	title := in.Procedure
	if title == "" {
		title = "Dental Appointment"
	}

	ap := &models.Appointment{
		PatientID:        patient.ID,
		DoctorID:         &doctorID,
		RoomID:           &roomID,
		StartTime:        start,
		EndTime:          end,
		Title:            title,
		Notes:            in.Notes,
		ConfirmationCode: uuid.NewString(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"start":         start,
			"end":           end,
			"comprehensive": true,
		},
	})

	return &BookComprehensiveResult{
		AppointmentID:    ap.ID,
		PatientID:        patient.ID,
		DoctorID:         doctorID,
		RoomID:           roomID,
		ConfirmationCode: ap.ConfirmationCode,
		NextSteps: []string{
			"Arrive 15 minutes before your appointment time",
			"Bring your insurance card and a photo ID",
			"Call the clinic if you need to reschedule",
		},
	}, nil
}
