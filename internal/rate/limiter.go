package rate

import (
	"sync"
	"time"
)

// idleTTL is how long a key's bucket may sit unused before it is dropped.
// A bucket idle that long has refilled to burst anyway.
const idleTTL = 10 * time.Minute

// Limiter is a per-key token bucket limiter with fixed rps and burst.
type Limiter struct {
	mu        sync.Mutex
	rps       float64
	burst     float64
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewLimiter creates a limiter with rps tokens per second and the given burst.
func NewLimiter(rps, burst int) *Limiter {
	if rps <= 0 {
		rps = 10
	}
	if burst < rps {
		burst = rps
	}
	return &Limiter{
		rps:     float64(rps),
		burst:   float64(burst),
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow consumes one token for key if available and returns true.
// Otherwise returns false.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		l.buckets[key] = &bucket{tokens: l.burst - 1, last: now}
		return true
	}

	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = min(l.burst, b.tokens+elapsed*l.rps)
		b.last = now
	}

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// Len reports how many keys are currently tracked.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep drops idle buckets at most once per idleTTL. Caller holds l.mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < idleTTL {
		return
	}
	l.lastSweep = now
	for k, b := range l.buckets {
		if now.Sub(b.last) >= idleTTL {
			delete(l.buckets, k)
		}
	}
}
