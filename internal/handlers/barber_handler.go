package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

type BarberHandler struct {
	repo schedule.Repository
}

func NewBarberHandler(repo schedule.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListActiveBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}
