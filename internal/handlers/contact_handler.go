package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
)

type ContactHandler struct {
	db       *gorm.DB
	notifier *notify.Dispatcher
}

func NewContactHandler(db *gorm.DB, notifier *notify.Dispatcher) *ContactHandler {
	return &ContactHandler{db: db, notifier: notifier}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Email == "" && req.Phone == "" {
		httperr.BadRequest(c, "missing_contact_detail", "Provide an email or a phone number.")
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_save_message", "Could not save the message.")
		return
	}

	h.notifier.Dispatch(notify.ContactEvent(&msg))

	httpresp.Created(c, msg)
}

func (h *ContactHandler) List(c *gin.Context) {
	var messages []models.ContactMessage
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(200).
		Find(&messages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	httpresp.List(c, messages)
}
