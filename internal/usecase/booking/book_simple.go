package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GmNoman/dentned-api/internal/audit"
	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookAppointmentInput struct {
	PatientFirstName string
	PatientLastName  string

	AppointmentDate time.Time
	AppointmentTime string

	Procedure string
	Notes     string
}

type BookAppointmentResult struct {
	AppointmentID uint
	PatientID     uint
	DoctorID      uint
	RoomID        uint
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookAppointmentResult, error) {

	// Bootstrap defaults: the first booking against an empty clinic
	// creates the fallback doctor and room.
	doctorID, doctorCreated, err := uc.repo.EnsureDefaultDoctor(ctx)
	if err != nil {
		return nil, err
	}
	if doctorCreated {
		uc.audit.Dispatch(audit.Event{
			Action:   "default_doctor_created",
			Entity:   "doctor",
			EntityID: &doctorID,
		})
	}

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

	// Patient: exact name match or a fresh row. Two patients sharing a
	// name silently merge; the desktop suite behaves the same way.
	patient, err := uc.repo.FindPatientByName(
		ctx,
		in.PatientFirstName,
		in.PatientLastName,
	)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		patient = &models.Patient{
			FirstName: in.PatientFirstName,
			LastName:  in.PatientLastName,
		}
		if err := uc.repo.CreatePatient(ctx, patient); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "patient_created",
			Entity:   "patient",
			EntityID: &patient.ID,
		})
	}

	start := combineDateAndTime(in.AppointmentDate, in.AppointmentTime)
	end := start.Add(domain.VisitDuration)

	title := in.Procedure
	if title == "" {
		title = "Dental Checkup"
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
			"start": start,
			"end":   end,
		},
	})

	return &BookAppointmentResult{
		AppointmentID: ap.ID,
		PatientID:     patient.ID,
		DoctorID:      doctorID,
		RoomID:        roomID,
	}, nil
}
