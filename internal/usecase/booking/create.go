package booking

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/audit"
	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/metrics"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID uint

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceType     string
	DurationMinutes int

	Date string // "2006-01-02"
	Time string // "15:04"
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     schedule.Repository
	hours    schedule.Hours
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo schedule.Repository,
	hours schedule.Hours,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		hours:    hours,
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.IsActive {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.hours.Location,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.CustomerName,
		in.CustomerEmail,
		in.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarberID:        in.BarberID,
		CustomerID:      customer.ID,
		StartAt:         start,
		ServiceType:     in.ServiceType,
		DurationMinutes: in.DurationMinutes,
	}

	dayStart := schedule.DateOnly(start)
	dayEnd := dayStart.AddDate(0, 0, 1)
	now := time.Now().In(uc.hours.Location)

	// Validation and insert share one transaction. The day lock
	// serializes concurrent attempts for the same barber-day; the
	// unique (barber_id, start_at) index is the last-resort guard.
	err = uc.repo.InTransaction(ctx, func(txRepo schedule.Repository) error {
		if err := txRepo.LockBarberDay(ctx, in.BarberID, dayStart, dayEnd); err != nil {
			return err
		}

		validator := schedule.NewValidator(uc.hours, txRepo)
		if err := validator.Validate(ctx, ap, barber, now); err != nil {
			return err
		}

		return txRepo.CreateAppointment(ctx, ap)
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			err = httperr.ErrBusiness("time_conflict")
		}
		if code, ok := httperr.IsAnyBusiness(err); ok {
			metrics.IncBookingRejected(code)
		}
		return nil, err
	}

	metrics.IncBookingCreated()

	// Confirmation is fire and forget: a failed notification never
	// fails the booking.
	uc.notifier.Dispatch(notify.AppointmentEvent(
		notify.EventAppointmentCreated, ap, barber, customer,
	))

	uc.audit.Dispatch(audit.Event{
		Actor:    customer.Email,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ap.Customer = *customer
	ap.Barber = *barber
	return ap, nil
}
