package reviews

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	summary *Summary
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(ctx context.Context) (*Summary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func TestServiceFetchesOnCacheMiss(t *testing.T) {
	fetcher := &fakeFetcher{summary: &Summary{Rating: 4.9, UserRatingCount: 214}}
	// nil redis client: every call is a cache miss.
	svc := NewService(fetcher, nil, zerolog.Nop())

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4.9, got.Rating)
	assert.Equal(t, 214, got.UserRatingCount)
	assert.Equal(t, 1, fetcher.calls)
}

func TestServicePropagatesUpstreamFailureWithoutStaleCopy(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("quota exceeded")}
	svc := NewService(fetcher, nil, zerolog.Nop())

	_, err := svc.Get(context.Background())
	assert.Error(t, err)
}

func TestPlacesClientRequiresConfig(t *testing.T) {
	client := NewPlacesClient("", "")

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}
