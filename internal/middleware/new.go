package middleware

import (
	"transcript-tasks/pkg/log"
)

// Config tunes the middleware set.
type Config struct {
	RateLimitPerMin int
	MaxClients      int
	ClientTTLMin    int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. A non-positive RateLimitPerMin disables
// rate limiting.
func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin, cfg.MaxClients, cfg.ClientTTLMin),
	}
}
