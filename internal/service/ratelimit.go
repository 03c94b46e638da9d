package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPRateLimiter tracks a token-bucket limiter per client key (remote IP).
// It is safe for concurrent use. Stale entries are pruned periodically.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a limiter allowing events at the given rate with
// the given burst per key, and starts a background pruning goroutine.
func NewIPRateLimiter(limit rate.Limit, burst int) *IPRateLimiter {
	l := &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
	}
	go l.cleanup()
	return l
}

// Allow reports whether the given key may proceed, consuming one token.
func (l *IPRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// cleanup removes entries that haven't been seen in 10 minutes.
func (l *IPRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, v := range l.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(l.visitors, key)
			}
		}
		l.mu.Unlock()
	}
}
