package reminders

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/metrics"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
)

// Window is how far ahead the job looks for appointments to remind.
const Window = 24 * time.Hour

// Review requests go out once the visit is comfortably over. The
// window is closed on both ends so a drifting cron cannot pick the
// same appointment twice even before the sent-stamp lands.
const (
	ReviewDelayMin = 90 * time.Minute
	ReviewDelayMax = 150 * time.Minute
)

// reviewWindow returns the end_at range whose appointments are due a
// review request at the given time.
func reviewWindow(now time.Time) (from, to time.Time) {
	return now.Add(-ReviewDelayMax), now.Add(-ReviewDelayMin)
}

// Service sends one reminder email per upcoming appointment and one
// review request per finished one. The Notification unique index
// (appointment, type, channel) makes a repeated run a no-op, so the
// job can run on any schedule.
type Service struct {
	db     *gorm.DB
	sender notify.Sender
	loc    *time.Location
	logger zerolog.Logger
}

func New(db *gorm.DB, sender notify.Sender, loc *time.Location, logger zerolog.Logger) *Service {
	return &Service{
		db:     db,
		sender: sender,
		loc:    loc,
		logger: logger,
	}
}

// Run executes the job every interval until ctx is cancelled.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

func (s *Service) RunOnce(ctx context.Context) {
	now := time.Now().In(s.loc)
	s.remindPass(ctx, now)
	s.reviewPass(ctx, now)
}

func (s *Service) remindPass(ctx context.Context, now time.Time) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Where(
			"status = ? AND start_at > ? AND start_at <= ?",
			models.AppointmentStatusBooked, now, now.Add(Window),
		).
		Order("start_at ASC").
		Find(&appointments).Error
	if err != nil {
		s.logger.Error().Err(err).Msg("reminder query failed")
		return
	}

	for i := range appointments {
		s.remind(ctx, &appointments[i])
	}
}

func (s *Service) reviewPass(ctx context.Context, now time.Time) {
	from, to := reviewWindow(now)

	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Where(
			"status <> ? AND end_at >= ? AND end_at <= ? AND review_request_sent_at IS NULL",
			models.AppointmentStatusCancelled, from, to,
		).
		Order("end_at ASC").
		Find(&appointments).Error
	if err != nil {
		s.logger.Error().Err(err).Msg("review request query failed")
		return
	}

	for i := range appointments {
		s.requestReview(ctx, &appointments[i], now)
	}
}

func (s *Service) remind(ctx context.Context, ap *models.Appointment) {
	if ap.Customer.Unsubscribed || ap.Customer.Email == "" {
		return
	}

	var sent int64
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where(
			"appointment_id = ? AND type = ? AND channel = ?",
			ap.ID, models.NotificationTypeReminder, models.NotificationChannelEmail,
		).
		Count(&sent).Error
	if err != nil {
		s.logger.Error().Err(err).Uint("appointment_id", ap.ID).Msg("reminder dedup check failed")
		return
	}
	if sent > 0 {
		return
	}

	ev := notify.AppointmentEvent(notify.EventAppointmentReminder, ap, &ap.Barber, &ap.Customer)
	if err := s.sender.Send(ctx, ev); err != nil {
		// No ledger entry on failure; the next run retries.
		s.logger.Error().Err(err).Uint("appointment_id", ap.ID).Msg("reminder send failed")
		return
	}

	record := models.Notification{
		AppointmentID: ap.ID,
		Type:          models.NotificationTypeReminder,
		Channel:       models.NotificationChannelEmail,
		Status:        "sent",
		SentAt:        time.Now().In(s.loc),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// Unique index violation means a concurrent run won the race.
		s.logger.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("reminder ledger write failed")
		return
	}

	metrics.IncReminderSent()
	s.logger.Info().
		Uint("appointment_id", ap.ID).
		Time("start_at", ap.StartAt).
		Msg("reminder sent")
}

func (s *Service) requestReview(ctx context.Context, ap *models.Appointment, now time.Time) {
	if ap.Customer.Unsubscribed || ap.Customer.Email == "" {
		return
	}

	var sent int64
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where(
			"appointment_id = ? AND type = ? AND channel = ?",
			ap.ID, models.NotificationTypeReview, models.NotificationChannelEmail,
		).
		Count(&sent).Error
	if err != nil {
		s.logger.Error().Err(err).Uint("appointment_id", ap.ID).Msg("review dedup check failed")
		return
	}
	if sent > 0 {
		return
	}

	ev := notify.AppointmentEvent(notify.EventReviewRequest, ap, &ap.Barber, &ap.Customer)
	if err := s.sender.Send(ctx, ev); err != nil {
		// No ledger entry on failure; the next run retries while the
		// appointment is still inside the window.
		s.logger.Error().Err(err).Uint("appointment_id", ap.ID).Msg("review request send failed")
		return
	}

	record := models.Notification{
		AppointmentID: ap.ID,
		Type:          models.NotificationTypeReview,
		Channel:       models.NotificationChannelEmail,
		Status:        "sent",
		SentAt:        now,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.logger.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("review ledger write failed")
		return
	}

	err = s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Update("review_request_sent_at", now).Error
	if err != nil {
		s.logger.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("review stamp failed")
	}

	metrics.IncReviewRequestSent()
	s.logger.Info().
		Uint("appointment_id", ap.ID).
		Time("end_at", ap.EndAt).
		Msg("review request sent")
}
