package ratelimiter

import (
	"context"
	"time"
)

// Store defines the interface for rate limit storage backends.
type Store interface {
	// ConsumeTokens refills the bucket and takes the requested number of
	// tokens if they are available. The returned remaining count is negative
	// when the bucket could not cover the request; in that case no tokens are
	// taken. A zero token count only refreshes the bucket.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}

// refill returns the token count and refill timestamp after applying the
// intervals elapsed since lastRefill. Elapsed intervals are capped so that
// the multiplication cannot overflow for long idle buckets.
func refill(tokens int, lastRefill, now time.Time, config Config) (int, time.Time) {
	elapsed := now.Sub(lastRefill)
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(elapsed/config.RefillInterval), maxIntervals))
	if intervals <= 0 {
		return tokens, lastRefill
	}
	return min(tokens+intervals*config.RefillRate, config.Capacity), now
}
