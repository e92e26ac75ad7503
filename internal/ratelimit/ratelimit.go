package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// InMemoryLimiter keeps one token bucket per key in process memory.
type InMemoryLimiter struct {
	keys map[string]*rate.Limiter
	mu   sync.Mutex
	r    rate.Limit
	b    int
}

// NewInMemoryLimiter allows requests per the given window with a burst of
// burst, e.g. NewInMemoryLimiter(30, time.Minute, 10).
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	if requests <= 0 {
		requests = 1
	}
	return &InMemoryLimiter{
		keys: make(map[string]*rate.Limiter),
		r:    rate.Every(per / time.Duration(requests)),
		b:    burst,
	}
}

func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.keys[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.keys[key] = limiter
	}

	return limiter.Allow()
}
