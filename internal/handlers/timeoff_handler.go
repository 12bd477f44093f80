package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/middleware"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
	"github.com/Al1mk/Meister-Barbershop/internal/usecase/timeoff"
)

type TimeOffHandler struct {
	repo       schedule.Repository
	hours      schedule.Hours
	createUC   *timeoff.CreateTimeOff
	deleteUC   *timeoff.DeleteTimeOff
	conflictUC *timeoff.CollectConflicts
}

func NewTimeOffHandler(
	repo schedule.Repository,
	hours schedule.Hours,
	createUC *timeoff.CreateTimeOff,
	deleteUC *timeoff.DeleteTimeOff,
	conflictUC *timeoff.CollectConflicts,
) *TimeOffHandler {
	return &TimeOffHandler{
		repo:       repo,
		hours:      hours,
		createUC:   createUC,
		deleteUC:   deleteUC,
		conflictUC: conflictUC,
	}
}

type CreateTimeOffRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
	Force     bool   `json:"force"`
}

func (h *TimeOffHandler) List(c *gin.Context) {
	barberID, err := paramUint(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	items, err := h.repo.ListAllTimeOff(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_time_off", "Could not list time off.")
		return
	}

	httpresp.List(c, items)
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	barberID, err := paramUint(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	startDate, endDate, err := h.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
		return
	}

	created, conflicts, err := h.createUC.Execute(c.Request.Context(), timeoff.CreateTimeOffInput{
		BarberID:  barberID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Force:     req.Force,
		Actor:     middleware.StaffActor(c),
	})
	if err != nil {
		if code, ok := httperr.IsAnyBusiness(err); ok && conflicts != nil &&
			(code == "time_off_overlap" || code == "appointment_conflicts") {
			httperr.Conflict(c, code, code, conflicts)
			return
		}
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_create_time_off", "Could not create time off.")
		}
		return
	}

	httpresp.Created(c, created)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid time off id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, middleware.StaffActor(c)); err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_delete_time_off", "Could not delete time off.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Conflicts previews what a candidate range would collide with, without
// creating anything.
func (h *TimeOffHandler) Conflicts(c *gin.Context) {
	barberID, err := queryUint(c, "barber_id")
	if err != nil {
		httperr.BadRequest(c, "missing_barber_id", "barber_id is required.")
		return
	}

	startDate, endDate, err := h.parseRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
		return
	}

	conflicts, err := h.conflictUC.Execute(c.Request.Context(), barberID, startDate, endDate)
	if err != nil {
		httperr.Internal(c, "failed_to_collect_conflicts", "Could not collect conflicts.")
		return
	}

	httpresp.OK(c, conflicts)
}

func (h *TimeOffHandler) parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.ParseInLocation("2006-01-02", start, h.hours.Location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := time.ParseInLocation("2006-01-02", end, h.hours.Location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate, nil
}
