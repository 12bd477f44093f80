package booking

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/dto"
	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

type ListAppointmentsByDate struct {
	repo  schedule.Repository
	hours schedule.Hours
}

func NewListAppointmentsByDate(repo schedule.Repository, hours schedule.Hours) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo, hours: hours}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.hours.Location)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart := schedule.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointments(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
