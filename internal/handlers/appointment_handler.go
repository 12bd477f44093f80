package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/middleware"
	"github.com/Al1mk/Meister-Barbershop/internal/usecase/booking"
	"github.com/Al1mk/Meister-Barbershop/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *booking.CreateAppointment
	slotsUC        *booking.GetSlots
	availabilityUC *booking.GetAvailability
	transitionUC   *booking.TransitionAppointment
	listUC         *booking.ListAppointmentsByDate
}

func NewAppointmentHandler(
	createUC *booking.CreateAppointment,
	slotsUC *booking.GetSlots,
	availabilityUC *booking.GetAvailability,
	transitionUC *booking.TransitionAppointment,
	listUC *booking.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		slotsUC:        slotsUC,
		availabilityUC: availabilityUC,
		transitionUC:   transitionUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID uint `json:"barber_id" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`

	ServiceType     string `json:"service_type"`
	DurationMinutes int    `json:"duration_minutes"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	barberID, err := queryUint(c, "barber_id")
	if err != nil {
		httperr.BadRequest(c, "missing_barber_id", "barber_id is required.")
		return
	}

	result, err := h.slotsUC.Execute(c.Request.Context(), booking.SlotsInput{
		BarberID:        barberID,
		Date:            c.Query("date"),
		ServiceType:     c.Query("service_type"),
		DurationMinutes: queryInt(c, "duration_minutes"),
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "slots_failed", "Could not compute slots.")
		}
		return
	}

	httpresp.OK(c, result)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID, err := queryUint(c, "barber_id")
	if err != nil {
		httperr.BadRequest(c, "missing_barber_id", "barber_id is required.")
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), booking.AvailabilityInput{
		BarberID:        barberID,
		Start:           c.Query("start"),
		End:             c.Query("end"),
		ServiceType:     c.Query("service_type"),
		DurationMinutes: queryInt(c, "duration_minutes"),
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "availability_failed", "Could not compute availability.")
		}
		return
	}

	httpresp.OK(c, result)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		BarberID:        req.BarberID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ServiceType:     req.ServiceType,
		DurationMinutes: req.DurationMinutes,
		Date:            req.Date,
		Time:            req.Time,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// ADMIN
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	// barber_id optional: the bot's daily digest lists every barber.
	barberID, _ := queryUint(c, "barber_id")

	items, err := h.listUC.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		}
		return
	}

	httpresp.List(c, items)
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.transitionUC.Cancel(c.Request.Context(), id, req.Reason, middleware.StaffActor(c))
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_cancel", "Could not cancel appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.transitionUC.Complete(c.Request.Context(), id, middleware.StaffActor(c))
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_complete", "Could not complete appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func queryUint(c *gin.Context, key string) (uint, error) {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	return uint(v), err
}

func queryInt(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

func paramUint(c *gin.Context, key string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(key), 10, 32)
	return uint(v), err
}
