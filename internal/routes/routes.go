package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/audit"
	"github.com/Al1mk/Meister-Barbershop/internal/config"
	"github.com/Al1mk/Meister-Barbershop/internal/handlers"
	infraRepo "github.com/Al1mk/Meister-Barbershop/internal/infra/repository"
	"github.com/Al1mk/Meister-Barbershop/internal/middleware"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
	"github.com/Al1mk/Meister-Barbershop/internal/photos"
	"github.com/Al1mk/Meister-Barbershop/internal/reviews"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
	ucBooking "github.com/Al1mk/Meister-Barbershop/internal/usecase/booking"
	ucTimeOff "github.com/Al1mk/Meister-Barbershop/internal/usecase/timeoff"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, hours schedule.Hours) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var senders []notify.Sender
	if cfg.BotNotifyURL != "" && cfg.TelegramBotSecret != "" {
		senders = append(senders, notify.NewTelegramRelay(cfg.BotNotifyURL, cfg.TelegramBotSecret))
	}
	if cfg.SMTPHost != "" {
		senders = append(senders, notify.NewEmailSender(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail,
		))
	}
	notificationLedger := notify.NewNotificationLedger(db, log.Logger)
	notifier := notify.NewDispatcher(log.Logger, notificationLedger, senders...)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	placesClient := reviews.NewPlacesClient(cfg.GooglePlacesAPIKey, cfg.GooglePlaceID)
	reviewsService := reviews.NewService(placesClient, rdb, log.Logger)

	photoUploader := photos.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		scheduleRepo,
		hours,
		notifier,
		auditDispatcher,
	)

	slotsUC := ucBooking.NewGetSlots(scheduleRepo, hours)
	availabilityUC := ucBooking.NewGetAvailability(scheduleRepo, hours)

	transitionUC := ucBooking.NewTransitionAppointment(
		scheduleRepo,
		notifier,
		auditDispatcher,
	)

	listAppointmentsUC := ucBooking.NewListAppointmentsByDate(scheduleRepo, hours)

	// ======================================================
	// USE CASES — TIME OFF
	// ======================================================
	collectConflictsUC := ucTimeOff.NewCollectConflicts(scheduleRepo, hours)

	createTimeOffUC := ucTimeOff.NewCreateTimeOff(
		scheduleRepo,
		collectConflictsUC,
		auditDispatcher,
	)

	deleteTimeOffUC := ucTimeOff.NewDeleteTimeOff(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(scheduleRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		slotsUC,
		availabilityUC,
		transitionUC,
		listAppointmentsUC,
	)

	timeOffHandler := handlers.NewTimeOffHandler(
		scheduleRepo,
		hours,
		createTimeOffUC,
		deleteTimeOffUC,
		collectConflictsUC,
	)

	contactHandler := handlers.NewContactHandler(db, notifier)
	reviewsHandler := handlers.NewReviewsHandler(reviewsService)
	photoHandler := handlers.NewPhotoHandler(db, photoUploader, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	unsubscribeHandler := handlers.NewUnsubscribeHandler(db)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/appointments/slots", appointmentHandler.Slots)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.POST("/appointments", appointmentHandler.Create)

		api.POST("/contact", contactHandler.Create)
		api.GET("/reviews", reviewsHandler.Get)
		api.GET("/unsubscribe/:token", unsubscribeHandler.Unsubscribe)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg))
		{
			admin.GET("/appointments", appointmentHandler.ListByDate)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			admin.GET("/barbers/:id/time-off", timeOffHandler.List)
			admin.POST("/barbers/:id/time-off", timeOffHandler.Create)
			admin.DELETE("/time-off/:id", timeOffHandler.Delete)
			admin.GET("/time-off/conflicts", timeOffHandler.Conflicts)

			admin.POST("/barbers/:id/photo", photoHandler.Upload)

			admin.GET("/contact-messages", contactHandler.List)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
