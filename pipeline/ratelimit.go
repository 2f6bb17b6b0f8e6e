package pipeline

import (
	"context"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"golang.org/x/time/rate"
)

var _ bookmark.Limiter = (*FixedLimiter)(nil)

// DefaultFetchDelay is the default minimum spacing between fetches.
const DefaultFetchDelay = time.Second

// FixedLimiter enforces a fixed minimum delay between fetches using a
// token bucket with no bursting. This is pipeline-level throttling, not a
// per-origin budget: adequate for single-user, low-volume operation, and
// a documented limitation at scale.
type FixedLimiter struct {
	limiter *rate.Limiter
}

// NewFixedLimiter creates a FixedLimiter with the given delay between
// fetches. A non-positive delay falls back to DefaultFetchDelay.
func NewFixedLimiter(delay time.Duration) *FixedLimiter {
	if delay <= 0 {
		delay = DefaultFetchDelay
	}
	return &FixedLimiter{
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// Wait blocks until the limiter allows the next fetch.
// Returns an error if the context is canceled before the wait completes.
func (l *FixedLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
