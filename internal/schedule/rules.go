package schedule

import (
	"fmt"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

// ClosedWeekday is the day the salon never opens, for any barber.
const ClosedWeekday = time.Sunday

const (
	ServiceHaircut   = "haircut"
	ServiceHairBeard = "hair_beard"
)

var serviceDurations = map[string]int{
	ServiceHaircut:   30,
	ServiceHairBeard: 45,
}

// DefaultDurationMinutes matches the haircut service.
const DefaultDurationMinutes = 30

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", hm, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On pins the wall-clock time onto the given calendar date.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// Hours is the immutable business-hours configuration threaded into the
// slot generator and the validator. It is built once at startup.
type Hours struct {
	Location *time.Location

	Opening TimeOfDay
	// Closing is the instant the last appointment must end by.
	Closing TimeOfDay
	// LatestStart is the boundary a booking must start strictly before.
	LatestStart TimeOfDay

	StepMinutes int
}

func NewHours(loc *time.Location, opening, closing, latestStart string, stepMinutes int) (Hours, error) {
	open, err := ParseTimeOfDay(opening)
	if err != nil {
		return Hours{}, err
	}
	closeAt, err := ParseTimeOfDay(closing)
	if err != nil {
		return Hours{}, err
	}
	latest, err := ParseTimeOfDay(latestStart)
	if err != nil {
		return Hours{}, err
	}
	if stepMinutes <= 0 {
		return Hours{}, fmt.Errorf("slot step must be positive, got %d", stepMinutes)
	}

	return Hours{
		Location:    loc,
		Opening:     open,
		Closing:     closeAt,
		LatestStart: latest,
		StepMinutes: stepMinutes,
	}, nil
}

func (h Hours) Step() time.Duration {
	return time.Duration(h.StepMinutes) * time.Minute
}

// AllowedWeekdays returns the weekdays the barber takes bookings on.
// Sunday is excluded even if it slips into the stored working days.
func AllowedWeekdays(b *models.Barber) map[time.Weekday]bool {
	days := b.WorkingDaysSet()
	delete(days, ClosedWeekday)
	return days
}

// ResolveService normalizes the (service type, duration) pair coming
// from a request. Zero durationMinutes means "not provided".
func ResolveService(serviceType string, durationMinutes int) (string, int, error) {
	normalized := ""
	resolved := 0

	if serviceType != "" {
		fixed, ok := serviceDurations[serviceType]
		if !ok {
			return "", 0, httperr.ErrBusiness("invalid_service_type")
		}
		normalized = serviceType
		resolved = fixed
	}

	if durationMinutes != 0 {
		if durationMinutes < 0 {
			return "", 0, httperr.ErrBusiness("invalid_duration")
		}
		if resolved != 0 && durationMinutes != resolved {
			return "", 0, httperr.ErrBusiness("service_duration_mismatch")
		}
		resolved = durationMinutes
	}

	if resolved == 0 {
		return "", 0, httperr.ErrBusiness("missing_duration")
	}

	return normalized, resolved, nil
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
