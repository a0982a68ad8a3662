package redis

import "errors"

var (
	// ErrEmptyConnectionURL means REDIS_URL is unset; callers fall back to
	// in-process state.
	ErrEmptyConnectionURL           = errors.New("redis: REDIS_URL is empty")
	ErrFailedToParseRedisConnString = errors.New("redis: cannot parse REDIS_URL")
	ErrRedisNotReady                = errors.New("redis: server did not answer PING before the retry budget ran out")
	ErrHealthcheckFailed            = errors.New("redis: readiness ping failed")
)
