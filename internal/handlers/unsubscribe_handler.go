package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

type UnsubscribeHandler struct {
	db *gorm.DB
}

func NewUnsubscribeHandler(db *gorm.DB) *UnsubscribeHandler {
	return &UnsubscribeHandler{db: db}
}

// Unsubscribe opts a customer out of reminder and review emails. The
// token comes from the footer of those emails; the link is a plain GET
// so it works from any mail client.
func (h *UnsubscribeHandler) Unsubscribe(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		httperr.BadRequest(c, "missing_token", "Token is required.")
		return
	}

	var customer models.Customer
	err := h.db.WithContext(c.Request.Context()).
		Where("unsubscribe_token = ?", token).
		First(&customer).Error
	if err != nil {
		httperr.NotFound(c, "unknown_token", "This link is not valid.")
		return
	}

	if !customer.Unsubscribed {
		customer.Unsubscribed = true
		if err := h.db.WithContext(c.Request.Context()).Save(&customer).Error; err != nil {
			httperr.Internal(c, "failed_to_unsubscribe", "Could not save your preference.")
			return
		}
	}

	httpresp.OK(c, gin.H{"unsubscribed": true})
}
