package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(200)

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var entries []models.AuditLog
	if err := q.Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, entries)
}
