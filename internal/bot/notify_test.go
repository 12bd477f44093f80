package bot

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTelegram struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func (f *fakeTelegram) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

func testBot(tg telegramClient) *Bot {
	return &Bot{
		tg:      tg,
		groupID: -100123,
		loc:     time.UTC,
		logger:  zerolog.Nop(),
	}
}

func postNotify(t *testing.T, srv *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestNotifyRejectsWrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tg := &fakeTelegram{}
	srv := testBot(tg).NotifyServer("right-secret")

	w := postNotify(t, srv, `{"event":"appointment_created","secret":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, tg.sent)
}

func TestNotifyForwardsToGroupChat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tg := &fakeTelegram{}
	srv := testBot(tg).NotifyServer("right-secret")

	body := `{
		"event": "appointment_created",
		"barber_name": "Ali",
		"customer_name": "Jonas",
		"customer_phone": "+49151",
		"service_type": "haircut",
		"duration_minutes": 30,
		"start_at": "2026-09-07T10:00:00Z",
		"end_at": "2026-09-07T10:30:00Z",
		"secret": "right-secret"
	}`

	w := postNotify(t, srv, body)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, tg.sent, 1)

	msg, ok := tg.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), msg.ChatID)
	assert.Contains(t, msg.Text, "New booking")
	assert.Contains(t, msg.Text, "Ali")
}

func TestNotifyRejectsGarbagePayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := testBot(&fakeTelegram{}).NotifyServer("s")

	w := postNotify(t, srv, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
