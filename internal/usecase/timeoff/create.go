package timeoff

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/audit"
	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/metrics"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

// ForcedCancelReason is the fixed system reason written onto
// appointments cancelled by a forced time-off.
const ForcedCancelReason = "Admin time-off"

type CreateTimeOffInput struct {
	BarberID  uint
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Force     bool
	Actor     string
}

// CreateTimeOff runs the admin workflow: detect conflicts, reject with
// details, or create the block — cascading cancellation of conflicting
// appointments when forced, atomically with the insert.
type CreateTimeOff struct {
	repo      schedule.Repository
	conflicts *CollectConflicts
	audit     *audit.Dispatcher
}

func NewCreateTimeOff(
	repo schedule.Repository,
	conflicts *CollectConflicts,
	auditor *audit.Dispatcher,
) *CreateTimeOff {
	return &CreateTimeOff{
		repo:      repo,
		conflicts: conflicts,
		audit:     auditor,
	}
}

// Execute returns the created record, or the conflicts that blocked it
// together with a business error the handler maps onto a 409.
func (uc *CreateTimeOff) Execute(
	ctx context.Context,
	in CreateTimeOffInput,
) (*models.TimeOff, *Conflicts, error) {

	if in.EndDate.Before(in.StartDate) {
		return nil, nil, httperr.ErrBusiness("invalid_date_range")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, nil, httperr.ErrBusiness("barber_not_found")
	}

	conflicts, err := uc.conflicts.Execute(ctx, in.BarberID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, nil, err
	}

	// Overlapping time-off is always a hard error, never forceable.
	if conflicts.HasTimeOff() {
		return nil, conflicts, httperr.ErrBusiness("time_off_overlap")
	}

	if conflicts.HasAppointments() && !in.Force {
		return nil, conflicts, httperr.ErrBusiness("appointment_conflicts")
	}

	timeOff := &models.TimeOff{
		BarberID:  in.BarberID,
		StartDate: schedule.DateOnly(in.StartDate),
		EndDate:   schedule.DateOnly(in.EndDate),
		Reason:    in.Reason,
		CreatedBy: in.Actor,
	}

	// Insert and forced cascade commit or roll back together.
	err = uc.repo.InTransaction(ctx, func(txRepo schedule.Repository) error {
		if err := txRepo.CreateTimeOff(ctx, timeOff); err != nil {
			return err
		}

		if in.Force && conflicts.HasAppointments() {
			if err := txRepo.CancelAppointments(
				ctx, conflicts.appointmentIDs, ForcedCancelReason,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, conflicts, err
	}

	if in.Force && conflicts.HasAppointments() {
		for range conflicts.appointmentIDs {
			metrics.IncBookingCancelled("forced_time_off")
		}
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "time_off_created",
		Entity:   "time_off",
		EntityID: &timeOff.ID,
		Metadata: map[string]any{
			"start_date": timeOff.StartDate.Format("2006-01-02"),
			"end_date":   timeOff.EndDate.Format("2006-01-02"),
			"force":      in.Force,
			"cancelled":  len(conflicts.appointmentIDs),
		},
	})

	return timeOff, conflicts, nil
}
