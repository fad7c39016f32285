package redis

import "errors"

var (
	ErrNotConfigured = errors.New("redis: REDIS_URL is not set")
	ErrInvalidURL    = errors.New("redis: invalid connection URL")
	ErrUnavailable   = errors.New("redis: server unavailable after retries")
	ErrPing          = errors.New("redis: ping failed")
)
