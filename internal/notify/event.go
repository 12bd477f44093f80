package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

const (
	EventAppointmentCreated   = "appointment_created"
	EventAppointmentCancelled = "appointment_cancelled"
	EventAppointmentReminder  = "appointment_reminder"
	EventReviewRequest        = "review_request"
	EventContactMessage       = "contact_message"
)

// Event is the fire-and-forget payload handed to the notification
// collaborators. Delivery failure never affects the booking.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"event"`

	AppointmentID   uint      `json:"appointment_id,omitempty"`
	BarberName      string    `json:"barber_name,omitempty"`
	CustomerName    string    `json:"customer_name,omitempty"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	ServiceType     string    `json:"service_type,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	StartAt         time.Time `json:"start_at,omitempty"`
	EndAt           time.Time `json:"end_at,omitempty"`

	Text string `json:"text,omitempty"`
}

func AppointmentEvent(eventType string, ap *models.Appointment, barber *models.Barber, customer *models.Customer) Event {
	return Event{
		ID:              uuid.NewString(),
		Type:            eventType,
		AppointmentID:   ap.ID,
		BarberName:      barber.Name,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		ServiceType:     ap.ServiceType,
		DurationMinutes: ap.DurationMinutes,
		StartAt:         ap.StartAt,
		EndAt:           ap.EndAt,
	}
}

func ContactEvent(msg *models.ContactMessage) Event {
	return Event{
		ID:   uuid.NewString(),
		Type: EventContactMessage,
		Text: fmt.Sprintf("New contact message from %s (%s %s):\n%s", msg.Name, msg.Email, msg.Phone, msg.Message),
	}
}
