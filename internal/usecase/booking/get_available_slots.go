package booking

import (
	"context"
	"time"

	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
)

// GetAvailableSlots lists the fixed half-hour slot grid for a day minus
// every slot any existing appointment overlaps, regardless of doctor.
type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	day time.Time,
) ([]string, error) {

	dayStart, dayEnd := dayBounds(day)

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for _, slotStart := range domain.SlotStarts(day) {
		slotEnd := slotStart.Add(domain.SlotInterval)

		booked := false
		for _, ap := range appointments {
			if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				booked = true
				break
			}
		}

		if !booked {
			slots = append(slots, slotStart.Format("15:04"))
		}
	}

	return slots, nil
}
