package timeoff

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/dto"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

// Conflicts is what stands in the way of a candidate time-off range:
// already-blocked ranges and live bookings.
type Conflicts struct {
	TimeOff      []models.TimeOff         `json:"time_off"`
	Appointments []dto.AppointmentListDTO `json:"appointments"`

	appointmentIDs []uint
}

func (c *Conflicts) HasTimeOff() bool      { return len(c.TimeOff) > 0 }
func (c *Conflicts) HasAppointments() bool { return len(c.Appointments) > 0 }

// CollectConflicts is the conflict detector: a pure read over one
// barber's time-off and non-cancelled appointments intersecting an
// inclusive date range. Repeated calls without mutation yield an
// identical ordered result.
type CollectConflicts struct {
	repo  schedule.Repository
	hours schedule.Hours
}

func NewCollectConflicts(repo schedule.Repository, hours schedule.Hours) *CollectConflicts {
	return &CollectConflicts{repo: repo, hours: hours}
}

func (uc *CollectConflicts) Execute(
	ctx context.Context,
	barberID uint,
	startDate time.Time,
	endDate time.Time,
) (*Conflicts, error) {

	timeOffs, err := uc.repo.ListTimeOff(ctx, barberID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	from := schedule.DateOnly(startDate)
	to := schedule.DateOnly(endDate).AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointments(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}

	conflicts := &Conflicts{
		TimeOff:      timeOffs,
		Appointments: dto.FromAppointments(appointments),
	}
	for _, ap := range appointments {
		conflicts.appointmentIDs = append(conflicts.appointmentIDs, ap.ID)
	}
	return conflicts, nil
}
