package middleware

import (
	"nextstep/pkg/log"
	"nextstep/pkg/scope"
)

// RateLimitConfig tunes the per-client limiter on AI-spending endpoints.
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained allowance per client.
	RequestsPerMinute int
	// Burst is the short-term allowance above the sustained rate.
	Burst int
}

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l        log.Logger
	scope    scope.Manager
	rlConfig RateLimitConfig
}

// New creates the middleware bundle.
func New(l log.Logger, scopeManager scope.Manager, rlConfig RateLimitConfig) Middleware {
	if rlConfig.RequestsPerMinute <= 0 {
		rlConfig.RequestsPerMinute = 30
	}
	if rlConfig.Burst <= 0 {
		rlConfig.Burst = 5
	}
	return Middleware{
		l:        l,
		scope:    scopeManager,
		rlConfig: rlConfig,
	}
}
