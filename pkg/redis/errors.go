package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	ErrInvalidURL         = errors.New("redis: invalid connection URL")
	ErrRedisNotReady      = errors.New("redis: not ready after retries")
	ErrHealthcheckFailed  = errors.New("redis: healthcheck failed")
)
