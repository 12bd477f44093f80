package booking

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

type SlotsInput struct {
	BarberID        uint
	Date            string // "2006-01-02"
	ServiceType     string
	DurationMinutes int
}

type SlotsResult struct {
	Date            string   `json:"date"`
	BarberID        uint     `json:"barber"`
	ServiceType     string   `json:"service_type"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
}

type GetSlots struct {
	repo  schedule.Repository
	hours schedule.Hours
}

func NewGetSlots(repo schedule.Repository, hours schedule.Hours) *GetSlots {
	return &GetSlots{repo: repo, hours: hours}
}

func (uc *GetSlots) Execute(ctx context.Context, in SlotsInput) (*SlotsResult, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.IsActive {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	serviceType, duration, err := schedule.ResolveService(in.ServiceType, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.hours.Location)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	result := &SlotsResult{
		Date:            date.Format("2006-01-02"),
		BarberID:        barber.ID,
		ServiceType:     serviceType,
		DurationMinutes: duration,
		Slots:           []string{},
	}

	// Time-off blocks whole days, so it is resolved here rather than
	// inside the slot walk.
	timeOffs, err := uc.repo.ListTimeOff(ctx, barber.ID, date, date)
	if err != nil {
		return nil, err
	}
	if len(timeOffs) > 0 {
		return result, nil
	}

	booked, err := uc.bookedIntervals(ctx, barber.ID, date)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateDailySlots(
		uc.hours,
		schedule.AllowedWeekdays(barber),
		time.Now(),
		date,
		duration,
		booked,
	)

	for _, s := range slots {
		result.Slots = append(result.Slots, s.Format("15:04"))
	}

	return result, nil
}

func (uc *GetSlots) bookedIntervals(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]schedule.Interval, error) {

	dayStart := schedule.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointments(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(appointments))
	for _, ap := range appointments {
		intervals = append(intervals, schedule.Interval{
			Start: ap.StartAt.In(uc.hours.Location),
			End:   ap.EndAt.In(uc.hours.Location),
		})
	}
	return intervals, nil
}
