package booking

import (
	"context"

	"github.com/Al1mk/Meister-Barbershop/internal/audit"
	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/metrics"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

// TransitionAppointment moves an appointment to completed or cancelled.
// Transitions are direct status updates: cancelling or completing cannot
// create new overlaps, so the full booking validation is not re-entered.
type TransitionAppointment struct {
	repo     schedule.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewTransitionAppointment(
	repo schedule.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *TransitionAppointment) Cancel(
	ctx context.Context,
	appointmentID uint,
	reason string,
	actor string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if ap.Status != models.AppointmentStatusBooked {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if reason == "" {
		reason = "Cancelled by staff"
	}
	if err := uc.repo.CancelAppointments(ctx, []uint{ap.ID}, reason); err != nil {
		return nil, err
	}
	ap.Status = models.AppointmentStatusCancelled
	ap.CancelReason = reason

	metrics.IncBookingCancelled("staff")

	uc.notifier.Dispatch(notify.AppointmentEvent(
		notify.EventAppointmentCancelled, ap, &ap.Barber, &ap.Customer,
	))

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"reason": reason},
	})

	return ap, nil
}

func (uc *TransitionAppointment) Complete(
	ctx context.Context,
	appointmentID uint,
	actor string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if ap.Status != models.AppointmentStatusBooked {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	ap.Status = models.AppointmentStatusCompleted
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
