package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/models"
)

func day(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func TestGetAvailableSlots_EmptyDayIsFullGrid(t *testing.T) {
	repo := &MockClinicRepository{}
	uc := NewGetAvailableSlots(repo)

	slots, err := uc.Execute(context.Background(), day(0, 0))
	require.NoError(t, err)

	// 09:00 through 16:30 in half-hour steps.
	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
}

func TestGetAvailableSlots_BookedHourShadowsBothHalves(t *testing.T) {
	repo := &MockClinicRepository{
		ListAppointmentsForDayFunc: func(ctx context.Context, s, e time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{StartTime: day(10, 0), EndTime: day(11, 0)},
			}, nil
		},
	}
	uc := NewGetAvailableSlots(repo)

	slots, err := uc.Execute(context.Background(), day(0, 0))
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "11:00")
}

func TestGetAvailability_PerDoctorSubtraction(t *testing.T) {
	repo := &MockClinicRepository{
		ListDoctorsFunc: func(ctx context.Context) ([]models.Doctor, error) {
			return []models.Doctor{{ID: 1}, {ID: 2}}, nil
		},
		ListAppointmentsForDayFunc: func(ctx context.Context, s, e time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{DoctorID: uintPtr(1), StartTime: day(9, 0), EndTime: day(10, 0)},
			}, nil
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day(0, 0)})
	require.NoError(t, err)

	// Hour grid is 09:00..16:00 = 8 slots per doctor; doctor 1 loses 09:00.
	assert.Len(t, slots, 15)
	assert.NotContains(t, slots, domain.DoctorSlot{StartTime: "09:00", EndTime: "10:00", DoctorID: 1})
	assert.Contains(t, slots, domain.DoctorSlot{StartTime: "09:00", EndTime: "10:00", DoctorID: 2})
}

func TestGetAvailability_StartTimeFloor(t *testing.T) {
	repo := &MockClinicRepository{
		ListDoctorsFunc: func(ctx context.Context) ([]models.Doctor, error) {
			return []models.Doctor{{ID: 1}}, nil
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      day(0, 0),
		StartTime: "14:00",
	})
	require.NoError(t, err)

	// Only 14:00, 15:00 and 16:00 clear the floor.
	require.Len(t, slots, 3)
	assert.Equal(t, "14:00", slots[0].StartTime)
	assert.Equal(t, "16:00", slots[2].StartTime)
}

func TestGetAvailability_UnassignedAppointmentsBlockNobody(t *testing.T) {
	repo := &MockClinicRepository{
		ListDoctorsFunc: func(ctx context.Context) ([]models.Doctor, error) {
			return []models.Doctor{{ID: 1}}, nil
		},
		ListAppointmentsForDayFunc: func(ctx context.Context, s, e time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{DoctorID: nil, StartTime: day(9, 0), EndTime: day(10, 0)},
			}, nil
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day(0, 0)})
	require.NoError(t, err)
	assert.Contains(t, slots, domain.DoctorSlot{StartTime: "09:00", EndTime: "10:00", DoctorID: 1})
}

func TestGetAvailability_NoDoctorsNoSlots(t *testing.T) {
	repo := &MockClinicRepository{}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: day(0, 0)})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
