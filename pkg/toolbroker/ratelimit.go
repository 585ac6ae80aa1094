package toolbroker

import (
	"sync"
	"time"
)

// rateLimiter implements per-grant sliding windows in process memory.
// Limits are advisory per instance; multi-replica deployments multiply
// the effective limit by the replica count.
type rateLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{history: make(map[string][]time.Time)}
}

// allow records an invocation and reports whether it fits inside the
// window. limit <= 0 disables limiting.
func (r *rateLimiter) allow(grantID string, limit int, window time.Duration) bool {
	if limit <= 0 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)
	kept := r.history[grantID][:0]
	for _, t := range r.history[grantID] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= limit {
		r.history[grantID] = kept
		return false
	}
	r.history[grantID] = append(kept, now)
	return true
}
