package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindow is an in-memory sliding-window-log limiter. It keeps the
// timestamps of recent attempts per key and prunes entries older than the
// window on every call. State lives for the process lifetime only.
type SlidingWindow struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *SlidingWindow) {
		s.now = now
	}
}

func NewSlidingWindow(limit int, window time.Duration, opts ...Option) *SlidingWindow {
	s := &SlidingWindow{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *SlidingWindow) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.prune(key)
	if len(recent) >= s.limit {
		return false
	}

	s.attempts[key] = append(recent, s.now())
	return true
}

func (s *SlidingWindow) Remaining(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.limit - len(s.prune(key))
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (s *SlidingWindow) Limit() int {
	return s.limit
}

func (s *SlidingWindow) Window() time.Duration {
	return s.window
}

func (s *SlidingWindow) Reset(key string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.prune(key)
	if len(recent) == 0 {
		return s.now()
	}

	// The window frees a slot when the oldest attempt ages out.
	return recent[0].Add(s.window)
}

// prune discards entries older than the window and stores the survivors.
// Caller must hold mu.
func (s *SlidingWindow) prune(key string) []time.Time {
	cutoff := s.now().Add(-s.window)

	recent := s.attempts[key][:0]
	for _, t := range s.attempts[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) == 0 {
		delete(s.attempts, key)
		return nil
	}

	s.attempts[key] = recent
	return recent
}
