package dto

import (
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	BarberID        uint      `json:"barber_id"`
	BarberName      string    `json:"barber_name"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	ServiceType     string    `json:"service_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
}

func FromAppointment(ap *models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:              ap.ID,
		BarberID:        ap.BarberID,
		BarberName:      ap.Barber.Name,
		StartAt:         ap.StartAt,
		EndAt:           ap.EndAt,
		ServiceType:     ap.ServiceType,
		DurationMinutes: ap.DurationMinutes,
		Status:          ap.Status,
		CustomerName:    ap.Customer.Name,
		CustomerPhone:   ap.Customer.Phone,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}
