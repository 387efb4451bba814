package middleware

import (
	"project-management/pkg/log"
)

// RateLimitConfig bounds how many requests a single client may send.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. The rate limiter is nil when disabled.
func New(l log.Logger, rl RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin, rl.Burst)
	}
	return mw
}
