package ratelimit

import "time"

// Limiter is a check-and-record rate limiter keyed by client identifier.
type Limiter interface {
	// Allow reports whether the client may proceed, recording the
	// attempt when it does.
	Allow(key string) bool

	// Remaining returns how many attempts the client has left in the
	// current window.
	Remaining(key string) int

	Limit() int

	Window() time.Duration

	// Reset returns when the client's oldest recorded attempt leaves
	// the window.
	Reset(key string) time.Time
}
