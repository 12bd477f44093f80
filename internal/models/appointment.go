package models

import "time"

const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"not null;uniqueIndex:idx_appointments_barber_start" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	StartAt time.Time `gorm:"not null;uniqueIndex:idx_appointments_barber_start" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`

	ServiceType     string `gorm:"size:20" json:"service_type"`
	DurationMinutes int    `gorm:"not null" json:"duration_minutes"`

	Status       string `gorm:"size:10;default:'booked'" json:"status"`
	CancelReason string `gorm:"size:120" json:"cancel_reason"`

	ConfirmationSentAt  *time.Time `json:"confirmation_sent_at"`
	ReviewRequestSentAt *time.Time `json:"review_request_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
