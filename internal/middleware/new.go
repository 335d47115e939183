package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"time-range-parser/pkg/log"
)

const (
	defaultRateLimitPerMin = 120
	maxTrackedClients      = 1000
	clientTTL              = 5 * time.Minute
)

// Config configures the shared middlewares.
type Config struct {
	// RateLimitPerMin is the sustained request rate per client. Zero or less disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin <= 0 {
		return mw
	}

	burst := cfg.RateLimitPerMin / 10
	if burst < 1 {
		burst = 1
	}
	mw.limiters = expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL)
	mw.rate = rate.Limit(float64(cfg.RateLimitPerMin) / 60.0)
	mw.burst = burst
	return mw
}

// DefaultConfig is used when no rate limit is configured.
func DefaultConfig() Config {
	return Config{RateLimitPerMin: defaultRateLimitPerMin}
}
