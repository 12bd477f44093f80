package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

// notificationTypeFor maps an event type to its Notification ledger
// type. Events outside the ledger (cancellations, contact messages)
// map to the empty string and are not recorded.
func notificationTypeFor(eventType string) string {
	switch eventType {
	case EventAppointmentCreated:
		return models.NotificationTypeConfirmation
	case EventAppointmentReminder:
		return models.NotificationTypeReminder
	case EventReviewRequest:
		return models.NotificationTypeReview
	default:
		return ""
	}
}

// NotificationLedger records successful deliveries in the Notification
// table and stamps the appointment's confirmation_sent_at when the
// confirmation mail goes out.
type NotificationLedger struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewNotificationLedger(db *gorm.DB, logger zerolog.Logger) *NotificationLedger {
	return &NotificationLedger{db: db, logger: logger}
}

func (l *NotificationLedger) Delivered(ctx context.Context, channel string, ev Event) {
	typ := notificationTypeFor(ev.Type)
	if typ == "" || ev.AppointmentID == 0 {
		return
	}
	if channel != models.NotificationChannelEmail && channel != models.NotificationChannelTelegram {
		return
	}

	record := models.Notification{
		AppointmentID: ev.AppointmentID,
		Type:          typ,
		Channel:       channel,
		Status:        "sent",
		SentAt:        time.Now(),
	}
	if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
		// Unique index violation means this delivery was already recorded.
		l.logger.Warn().Err(err).
			Uint("appointment_id", ev.AppointmentID).
			Str("type", typ).
			Str("channel", channel).
			Msg("notification ledger write failed")
		return
	}

	if typ == models.NotificationTypeConfirmation && channel == models.NotificationChannelEmail {
		err := l.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("id = ? AND confirmation_sent_at IS NULL", ev.AppointmentID).
			Update("confirmation_sent_at", record.SentAt).Error
		if err != nil {
			l.logger.Warn().Err(err).
				Uint("appointment_id", ev.AppointmentID).
				Msg("confirmation stamp failed")
		}
	}
}
