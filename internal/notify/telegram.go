package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TelegramRelay posts events to the companion bot's /notify endpoint,
// which forwards them to the salon's group chat.
type TelegramRelay struct {
	url    string
	secret string
	client *http.Client
}

func NewTelegramRelay(url, secret string) *TelegramRelay {
	return &TelegramRelay{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *TelegramRelay) Name() string { return "telegram" }

func (t *TelegramRelay) Send(ctx context.Context, ev Event) error {
	payload := struct {
		Event
		Secret string `json:"secret,omitempty"`
	}{Event: ev, Secret: t.secret}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("bot notify returned %d", resp.StatusCode)
	}
	return nil
}
