package timeoff

import (
	"context"

	"github.com/Al1mk/Meister-Barbershop/internal/audit"
	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

// DeleteTimeOff is unconditional; appointments cancelled by a previous
// forced block stay cancelled.
type DeleteTimeOff struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteTimeOff(repo schedule.Repository, auditor *audit.Dispatcher) *DeleteTimeOff {
	return &DeleteTimeOff{repo: repo, audit: auditor}
}

func (uc *DeleteTimeOff) Execute(ctx context.Context, id uint, actor string) error {

	timeOff, err := uc.repo.GetTimeOff(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("time_off_not_found")
	}

	if err := uc.repo.DeleteTimeOff(ctx, timeOff.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "time_off_deleted",
		Entity:   "time_off",
		EntityID: &timeOff.ID,
	})

	return nil
}
