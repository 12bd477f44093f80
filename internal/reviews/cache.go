package reviews

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const (
	cacheKey      = "google_reviews"
	staleCacheKey = "google_reviews:stale"

	// Google caps how often the profile can be polled; six hours keeps
	// the carousel fresh enough.
	CacheTTL = 6 * time.Hour
)

// Fetcher is satisfied by PlacesClient and by test doubles.
type Fetcher interface {
	Fetch(ctx context.Context) (*Summary, error)
}

// Service serves review summaries from Redis, refreshing from the
// Places API on miss. When the upstream fails, the last good payload is
// served stale instead of surfacing the error.
type Service struct {
	fetcher Fetcher
	rdb     *redis.Client
	ttl     time.Duration
	logger  zerolog.Logger
}

func NewService(fetcher Fetcher, rdb *redis.Client, logger zerolog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		rdb:     rdb,
		ttl:     CacheTTL,
		logger:  logger,
	}
}

func (s *Service) Get(ctx context.Context) (*Summary, error) {
	if cached := s.load(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	summary, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("reviews refresh failed, trying stale cache")
		if stale := s.load(ctx, staleCacheKey); stale != nil {
			return stale, nil
		}
		return nil, err
	}

	s.store(ctx, summary)
	return summary, nil
}

func (s *Service) load(ctx context.Context, key string) *Summary {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("reviews cache read failed")
		}
		return nil
	}

	var summary Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *Service) store(ctx context.Context, summary *Summary) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, cacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("reviews cache write failed")
	}
	// The stale copy never expires; it backs the upstream-down path.
	if err := s.rdb.Set(ctx, staleCacheKey, raw, 0).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("reviews stale cache write failed")
	}
}
