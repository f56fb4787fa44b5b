package ratelimit

import (
	"testing"
	"time"
)

// fakeClock drives the limiter's window deterministically.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestSlidingWindowAllow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewSlidingWindow(5, time.Hour, WithClock(clock.Now))

	t.Run("allows up to the limit", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			if !limiter.Allow("10.0.0.1") {
				t.Fatalf("attempt %d rejected, want allowed", i+1)
			}
			clock.Advance(time.Minute)
		}

		if limiter.Allow("10.0.0.1") {
			t.Fatal("6th attempt allowed, want rejected")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		if !limiter.Allow("10.0.0.2") {
			t.Fatal("fresh client rejected")
		}
	})

	t.Run("window slides", func(t *testing.T) {
		// An hour after the first attempt it ages out, freeing one slot.
		clock.Advance(55 * time.Minute)

		if !limiter.Allow("10.0.0.1") {
			t.Fatal("attempt after window elapsed rejected, want allowed")
		}
		if limiter.Allow("10.0.0.1") {
			t.Fatal("attempt within refilled window allowed, want rejected")
		}
	})
}

func TestSlidingWindowRemaining(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewSlidingWindow(3, time.Hour, WithClock(clock.Now))

	if got := limiter.Remaining("10.0.0.1"); got != 3 {
		t.Fatalf("Remaining = %d, want 3", got)
	}

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")

	if got := limiter.Remaining("10.0.0.1"); got != 1 {
		t.Fatalf("Remaining = %d, want 1", got)
	}

	clock.Advance(time.Hour + time.Second)

	if got := limiter.Remaining("10.0.0.1"); got != 3 {
		t.Fatalf("Remaining after window = %d, want 3", got)
	}
}

func TestSlidingWindowReset(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start}
	limiter := NewSlidingWindow(2, time.Hour, WithClock(clock.Now))

	t.Run("no attempts resets now", func(t *testing.T) {
		if got := limiter.Reset("10.0.0.1"); !got.Equal(start) {
			t.Fatalf("Reset = %v, want %v", got, start)
		}
	})

	t.Run("tracks oldest attempt", func(t *testing.T) {
		limiter.Allow("10.0.0.1")
		clock.Advance(10 * time.Minute)
		limiter.Allow("10.0.0.1")

		want := start.Add(time.Hour)
		if got := limiter.Reset("10.0.0.1"); !got.Equal(want) {
			t.Fatalf("Reset = %v, want %v", got, want)
		}
	})
}
