// Package ratelimiter provides token bucket rate limiting with in-memory and
// Redis storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token (AllowN takes several). When
// the bucket cannot cover a request the Result has a negative Remaining
// value, Allowed reports false and no tokens are taken.
//
// # Basic Usage
//
//	config := ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	}
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewTokenBucket(store, config)
//	if err != nil {
//		return err
//	}
//
//	result, err := limiter.Allow(ctx, clientIP)
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		// retry after result.RetryAfter()
//	}
//
// # Stores
//
// MemoryStore keeps buckets in process memory and drops buckets that have
// not been touched for an hour. RedisStore runs the same algorithm in a Lua
// script so that replicas share one bucket per key:
//
//	store, err := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix("armored:rl:"))
//
// # HTTP Middleware
//
//	mw := ratelimiter.Middleware(limiter, clientip.KeyFunc(),
//		ratelimiter.WithSkip(isHealthProbe),
//		ratelimiter.WithErrorResponder(writeRateLimited),
//	)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited request and Retry-After on rejections.
// Requests whose key is empty are not limited. Composite combines several
// KeyFuncs; keys longer than 64 characters are hashed with FNV-1a.
//
// # Errors
//
//	errors.Is(err, ratelimiter.ErrInvalidConfig)     // bad Config or missing store
//	errors.Is(err, ratelimiter.ErrInvalidTokenCount) // AllowN with n <= 0
//	errors.Is(err, ratelimiter.ErrStoreUnavailable)  // Redis failure
//	errors.Is(err, ratelimiter.ErrContextCancelled)  // context done
package ratelimiter
