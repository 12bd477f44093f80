package models

import "time"

const (
	NotificationTypeConfirmation = "confirmation"
	NotificationTypeReminder     = "reminder"
	NotificationTypeReview       = "review"

	NotificationChannelEmail    = "email"
	NotificationChannelTelegram = "telegram"
)

// Notification is the sent-message ledger. The unique index makes
// confirmation and reminder delivery idempotent per appointment.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null;uniqueIndex:idx_notifications_dedup" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type    string `gorm:"size:20;not null;uniqueIndex:idx_notifications_dedup" json:"type"`
	Channel string `gorm:"size:10;not null;uniqueIndex:idx_notifications_dedup" json:"channel"`

	Status  string `gorm:"size:10;not null" json:"status"`
	Details string `gorm:"size:255" json:"details"`

	SentAt time.Time `json:"sent_at"`
}
