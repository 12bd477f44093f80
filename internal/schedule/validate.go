package schedule

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

// Validator is the single place where every booking invariant is applied
// together. It runs on every save, not only creation, so it never trusts
// prior state. On success the appointment's service metadata, start and
// end are normalized in place.
type Validator struct {
	hours Hours
	repo  Repository
}

func NewValidator(hours Hours, repo Repository) *Validator {
	return &Validator{hours: hours, repo: repo}
}

func (v *Validator) Validate(
	ctx context.Context,
	ap *models.Appointment,
	barber *models.Barber,
	now time.Time,
) error {

	if ap.StartAt.IsZero() {
		return httperr.ErrBusiness("missing_start")
	}

	serviceType, duration, err := ResolveService(ap.ServiceType, ap.DurationMinutes)
	if err != nil {
		return err
	}

	start := ap.StartAt.In(v.hours.Location)

	today := DateOnly(now.In(v.hours.Location))
	if !DateOnly(start).After(today) {
		return httperr.ErrBusiness("past_or_today")
	}

	weekday := start.Weekday()
	if weekday == ClosedWeekday {
		return httperr.ErrBusiness("salon_closed")
	}
	if !AllowedWeekdays(barber)[weekday] {
		return httperr.ErrBusiness("barber_not_working")
	}

	dayStart := DateOnly(start)
	dayEnd := dayStart.AddDate(0, 0, 1)

	timeOffs, err := v.repo.ListTimeOff(ctx, ap.BarberID, dayStart, dayStart)
	if err != nil {
		return err
	}
	if len(timeOffs) > 0 {
		return httperr.ErrBusiness("time_off_blocked")
	}

	if start.Second() != 0 || start.Nanosecond() != 0 {
		return httperr.ErrBusiness("unaligned_start")
	}

	opening := v.hours.Opening.On(start, v.hours.Location)
	if start.Before(opening) {
		return httperr.ErrBusiness("outside_business_hours")
	}
	if start.Sub(opening)%v.hours.Step() != 0 {
		return httperr.ErrBusiness("unaligned_start")
	}

	latestStart := v.hours.LatestStart.On(start, v.hours.Location)
	if !start.Before(latestStart) {
		return httperr.ErrBusiness("too_late_start")
	}

	end := start.Add(time.Duration(duration) * time.Minute)
	closing := v.hours.Closing.On(start, v.hours.Location)
	if end.After(closing) {
		return httperr.ErrBusiness("outside_business_hours")
	}

	others, err := v.repo.ListAppointments(ctx, ap.BarberID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	candidate := Interval{Start: start, End: end}
	for _, other := range others {
		if other.ID == ap.ID {
			continue
		}
		existing := Interval{
			Start: other.StartAt.In(v.hours.Location),
			End:   other.EndAt.In(v.hours.Location),
		}
		if candidate.Overlaps(existing) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	ap.ServiceType = serviceType
	ap.DurationMinutes = duration
	ap.StartAt = start
	ap.EndAt = end
	if ap.Status == "" {
		ap.Status = models.AppointmentStatusBooked
	}
	if ap.Status != models.AppointmentStatusCancelled {
		ap.CancelReason = ""
	}

	return nil
}
