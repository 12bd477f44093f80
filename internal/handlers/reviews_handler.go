package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/reviews"
)

type ReviewsHandler struct {
	service *reviews.Service
}

func NewReviewsHandler(service *reviews.Service) *ReviewsHandler {
	return &ReviewsHandler{service: service}
}

func (h *ReviewsHandler) Get(c *gin.Context) {
	summary, err := h.service.Get(c.Request.Context())
	if err != nil {
		httperr.Write(c, http.StatusBadGateway, "reviews_unavailable", "Reviews are unavailable right now.")
		return
	}

	httpresp.OK(c, summary)
}
