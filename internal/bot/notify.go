package bot

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Al1mk/Meister-Barbershop/internal/notify"
)

type notifyPayload struct {
	notify.Event
	Secret string `json:"secret"`
}

// NotifyServer receives events from the backend's telegram relay and
// posts them into the group chat.
func (b *Bot) NotifyServer(secret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/notify", func(c *gin.Context) {
		var payload notifyPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(payload.Secret), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_secret"})
			return
		}

		text := formatEvent(payload.Event)
		if _, err := b.tg.Send(tgbotapi.NewMessage(b.groupID, text)); err != nil {
			b.logger.Error().Err(err).Str("event", payload.Type).Msg("telegram send failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "telegram_send_failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"delivered": true})
	})

	return r
}
