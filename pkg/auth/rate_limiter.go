package auth

import (
	"sync"
	"time"
)

// RateLimiter is an in-memory fixed-window rate limiter keyed by an
// arbitrary string (client IP, user ID). Good enough per process; Lambda
// concurrency means the effective limit scales with instance count.
type RateLimiter struct {
	perMinute int

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter creates a limiter allowing perMinute requests per key
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		windows:   make(map[string]*window),
	}
}

// Allow reports whether the key may proceed
func (l *RateLimiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= time.Minute {
		l.windows[key] = &window{start: now, count: 1}
		l.evictStale(now)
		return true
	}

	if w.count >= l.perMinute {
		return false
	}
	w.count++
	return true
}

// evictStale drops expired windows so the map doesn't grow unbounded.
// Caller holds the lock.
func (l *RateLimiter) evictStale(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= 2*time.Minute {
			delete(l.windows, key)
		}
	}
}
