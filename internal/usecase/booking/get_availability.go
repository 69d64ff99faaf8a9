package booking

import (
	"context"
	"time"

	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/models"
)

// GetAvailability reports free hour-long slots per doctor, optionally
// floored at a start time. It reads the same appointments table the
// booking paths write.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.DoctorSlot, error) {

	doctors, err := uc.repo.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBounds(in.Date)

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// Unassigned appointments block no doctor.
	byDoctor := make(map[uint][]models.Appointment)
	for _, ap := range appointments {
		if ap.DoctorID == nil {
			continue
		}
		byDoctor[*ap.DoctorID] = append(byDoctor[*ap.DoctorID], ap)
	}

	floor := dayStart
	if in.StartTime != "" {
		if t, err := time.Parse("15:04", in.StartTime); err == nil {
			floor = time.Date(
				in.Date.Year(), in.Date.Month(), in.Date.Day(),
				t.Hour(), t.Minute(), 0, 0,
				in.Date.Location(),
			)
		}
	}

	slots := []domain.DoctorSlot{}
	for _, doctor := range doctors {
		booked := byDoctor[doctor.ID]

		for _, slotStart := range domain.HourSlotStarts(in.Date) {
			if slotStart.Before(floor) {
				continue
			}

			slotEnd := slotStart.Add(domain.VisitDuration)

			conflict := false
			for _, ap := range booked {
				if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, domain.DoctorSlot{
					StartTime: slotStart.Format("15:04"),
					EndTime:   slotEnd.Format("15:04"),
					DoctorID:  doctor.ID,
				})
			}
		}
	}

	return slots, nil
}
