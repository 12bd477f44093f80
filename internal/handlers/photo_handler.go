package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/audit"
	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/httpresp"
	"github.com/Al1mk/Meister-Barbershop/internal/middleware"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/photos"
)

const maxPhotoBytes = 10 << 20

type PhotoHandler struct {
	db       *gorm.DB
	uploader *photos.Uploader
	audit    *audit.Dispatcher
}

func NewPhotoHandler(db *gorm.DB, uploader *photos.Uploader, auditor *audit.Dispatcher) *PhotoHandler {
	return &PhotoHandler{db: db, uploader: uploader, audit: auditor}
}

// Upload accepts a multipart portrait for one barber, converts it and
// stores the public URL on the record.
func (h *PhotoHandler) Upload(c *gin.Context) {
	barberID, err := paramUint(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Attach the image as the 'photo' field.")
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "The image must be 10MB or less.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the upload.")
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), barber.ID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "The image could not be processed.")
		return
	}

	barber.PhotoURL = url
	if err := h.db.WithContext(c.Request.Context()).Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_save_barber", "Could not save the barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    middleware.StaffActor(c),
		Action:   "barber_photo_uploaded",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.OK(c, gin.H{"photo_url": url})
}
