package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

const (
	placesEndpoint = "https://places.googleapis.com/v1"
	maxReviews     = 12
)

var fieldMask = "rating,userRatingCount," +
	"reviews.rating,reviews.text,reviews.publishTime," +
	"reviews.authorAttribution.displayName,reviews.authorAttribution.uri"

type Review struct {
	AuthorName string  `json:"authorName"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       string  `json:"time"`
	SourceURL  string  `json:"sourceUrl,omitempty"`
}

// Summary is the aggregate served to the frontend carousel.
type Summary struct {
	Rating          float64  `json:"rating"`
	UserRatingCount int      `json:"userRatingCount"`
	Reviews         []Review `json:"reviews"`
}

// PlacesClient fetches the salon's Google Business profile reviews.
type PlacesClient struct {
	apiKey  string
	placeID string
	client  *http.Client
}

func NewPlacesClient(apiKey, placeID string) *PlacesClient {
	return &PlacesClient{
		apiKey:  apiKey,
		placeID: placeID,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type placesResponse struct {
	Rating          float64 `json:"rating"`
	UserRatingCount int     `json:"userRatingCount"`
	Reviews         []struct {
		Rating float64 `json:"rating"`
		Text   struct {
			Text string `json:"text"`
		} `json:"text"`
		PublishTime       string `json:"publishTime"`
		AuthorAttribution struct {
			DisplayName string `json:"displayName"`
			URI         string `json:"uri"`
		} `json:"authorAttribution"`
	} `json:"reviews"`
}

func (p *PlacesClient) Fetch(ctx context.Context) (*Summary, error) {
	if p.apiKey == "" || p.placeID == "" {
		return nil, fmt.Errorf("google places not configured")
	}

	url := fmt.Sprintf("%s/places/%s", placesEndpoint, p.placeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", p.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api returned %d", resp.StatusCode)
	}

	var raw placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	summary := &Summary{
		Rating:          raw.Rating,
		UserRatingCount: raw.UserRatingCount,
	}
	for _, r := range raw.Reviews {
		summary.Reviews = append(summary.Reviews, Review{
			AuthorName: r.AuthorAttribution.DisplayName,
			Rating:     r.Rating,
			Text:       r.Text.Text,
			Time:       r.PublishTime,
			SourceURL:  r.AuthorAttribution.URI,
		})
	}

	// Newest first, capped for the carousel.
	sort.SliceStable(summary.Reviews, func(i, j int) bool {
		return summary.Reviews[i].Time > summary.Reviews[j].Time
	})
	if len(summary.Reviews) > maxReviews {
		summary.Reviews = summary.Reviews[:maxReviews]
	}

	return summary, nil
}
