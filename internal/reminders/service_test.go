package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReviewWindowBounds(t *testing.T) {
	now := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)

	from, to := reviewWindow(now)

	assert.Equal(t, now.Add(-150*time.Minute), from)
	assert.Equal(t, now.Add(-90*time.Minute), to)
	assert.True(t, from.Before(to))
}

func TestReviewWindowSelectsRecentlyFinishedVisits(t *testing.T) {
	now := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)
	from, to := reviewWindow(now)

	inWindow := func(endAt time.Time) bool {
		return !endAt.Before(from) && !endAt.After(to)
	}

	// Ended two hours ago: due for a review ask.
	assert.True(t, inWindow(now.Add(-2*time.Hour)))
	// Both edges are inclusive, matching the pass's query.
	assert.True(t, inWindow(from))
	assert.True(t, inWindow(to))
	// Ended an hour ago (too fresh) or three hours ago (missed cron
	// runs have moved on): out of scope for this pass.
	assert.False(t, inWindow(now.Add(-time.Hour)))
	assert.False(t, inWindow(now.Add(-3*time.Hour)))
}
