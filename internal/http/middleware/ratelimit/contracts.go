package ratelimit

import "time"

// Limiter decides per key whether a request may pass.
type Limiter interface {
	Allow(key string) bool
}

// Clock provides current time; injected so limiter tests can steer it.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter admits everything. Used when rate limiting is disabled.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }
