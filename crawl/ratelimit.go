package crawl

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles requests against the wiki host using a token bucket.
// All document fetches go to one host, so a single bucket is enough; the
// burst of 1 forbids bursting. A nil Limiter never waits.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter allowing rps requests per second. A rate of
// zero or less disables throttling.
func NewLimiter(rps float64) *Limiter {
	if rps <= 0 {
		return nil
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows another request.
// Returns an error only if the context is canceled before then.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
