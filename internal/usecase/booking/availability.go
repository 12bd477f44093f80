package booking

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

// MaxAvailabilityRangeDays caps the multi-day view.
const MaxAvailabilityRangeDays = 62

type AvailabilityInput struct {
	BarberID        uint
	Start           string // "2006-01-02"
	End             string // "2006-01-02"
	ServiceType     string
	DurationMinutes int
}

type DayAvailability struct {
	Date  string `json:"date"`
	Free  int    `json:"free"`
	Total int    `json:"total"`
}

type AvailabilityResult struct {
	BarberID        uint              `json:"barber"`
	Start           string            `json:"start"`
	End             string            `json:"end"`
	ServiceType     string            `json:"service_type"`
	DurationMinutes int               `json:"duration_minutes"`
	Days            []DayAvailability `json:"days"`
}

type GetAvailability struct {
	repo  schedule.Repository
	hours schedule.Hours
}

func NewGetAvailability(repo schedule.Repository, hours schedule.Hours) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.IsActive {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	startDate, err := time.ParseInLocation("2006-01-02", in.Start, uc.hours.Location)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	endDate, err := time.ParseInLocation("2006-01-02", in.End, uc.hours.Location)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if endDate.Before(startDate) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}
	if int(endDate.Sub(startDate).Hours()/24) > MaxAvailabilityRangeDays {
		return nil, httperr.ErrBusiness("range_too_large")
	}

	serviceType, duration, err := schedule.ResolveService(in.ServiceType, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	bookingsByDay, err := uc.collectBookings(ctx, barber.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	timeOffs, err := uc.repo.ListTimeOff(ctx, barber.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	allowed := schedule.AllowedWeekdays(barber)
	now := time.Now()

	var days []DayAvailability
	for cur := startDate; !cur.After(endDate); cur = cur.AddDate(0, 0, 1) {
		total := len(schedule.GenerateDailySlots(uc.hours, allowed, now, cur, duration, nil))

		free := 0
		if !dateBlockedByTimeOff(timeOffs, cur) {
			key := cur.Format("2006-01-02")
			free = len(schedule.GenerateDailySlots(uc.hours, allowed, now, cur, duration, bookingsByDay[key]))
		}

		days = append(days, DayAvailability{
			Date:  cur.Format("2006-01-02"),
			Free:  free,
			Total: total,
		})
	}

	return &AvailabilityResult{
		BarberID:        barber.ID,
		Start:           startDate.Format("2006-01-02"),
		End:             endDate.Format("2006-01-02"),
		ServiceType:     serviceType,
		DurationMinutes: duration,
		Days:            days,
	}, nil
}

func (uc *GetAvailability) collectBookings(
	ctx context.Context,
	barberID uint,
	startDate time.Time,
	endDate time.Time,
) (map[string][]schedule.Interval, error) {

	from := schedule.DateOnly(startDate)
	to := schedule.DateOnly(endDate).AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointments(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]schedule.Interval)
	for _, ap := range appointments {
		localStart := ap.StartAt.In(uc.hours.Location)
		key := localStart.Format("2006-01-02")
		byDay[key] = append(byDay[key], schedule.Interval{
			Start: localStart,
			End:   ap.EndAt.In(uc.hours.Location),
		})
	}
	return byDay, nil
}

func dateBlockedByTimeOff(timeOffs []models.TimeOff, date time.Time) bool {
	for i := range timeOffs {
		if timeOffs[i].Covers(date) {
			return true
		}
	}
	return false
}
