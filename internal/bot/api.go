package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/dto"
)

// APIClient reads the booking backend's admin API. It authenticates
// with the shared admin password over Basic auth.
type APIClient struct {
	baseURL       string
	adminPassword string
	client        *http.Client
}

func NewAPIClient(baseURL, adminPassword string) *APIClient {
	return &APIClient{
		baseURL:       strings.TrimRight(baseURL, "/"),
		adminPassword: adminPassword,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

type listEnvelope struct {
	Data  []dto.AppointmentListDTO `json:"data"`
	Total int                      `json:"total"`
}

// AppointmentsByDate returns every barber's non-cancelled appointments
// for one local calendar date.
func (a *APIClient) AppointmentsByDate(ctx context.Context, date time.Time) ([]dto.AppointmentListDTO, error) {
	u := fmt.Sprintf(
		"%s/api/admin/appointments?date=%s",
		a.baseURL,
		url.QueryEscape(date.Format("2006-01-02")),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth("bot", a.adminPassword)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("admin api returned %d", resp.StatusCode)
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
