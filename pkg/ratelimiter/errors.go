package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by NewTokenBucket and NewRedisStore for a
	// bad Config or a missing store or client.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")

	// ErrInvalidTokenCount is returned by AllowN when n is not positive.
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")

	// ErrContextCancelled wraps the context error when a check is abandoned.
	ErrContextCancelled = errors.New("ratelimiter: context cancelled")

	// ErrStoreUnavailable marks bucket storage failures. The HTTP middleware
	// answers them with 503 instead of letting the request through.
	ErrStoreUnavailable = errors.New("ratelimiter: bucket store unavailable")
)
