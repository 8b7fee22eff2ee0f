package api

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Original client limits: generous for reads, stricter for mutations.
const (
	readRequestLimit     = 100
	mutationRequestLimit = 30
	requestLimitWindow   = time.Minute
	limiterSweepInterval = time.Minute
)

// requestLimiter is a keyed sliding-window counter. It is held on the
// Handler and swept from main's lifecycle context rather than living in a
// package-wide singleton.
type requestLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
}

func newRequestLimiter() *requestLimiter {
	return &requestLimiter{
		requests: make(map[string][]time.Time),
	}
}

// allow records the request and reports whether it is within limit.
func (limiter *requestLimiter) allow(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	pruned := limiter.pruneLocked(key, now, window)
	if len(pruned) >= limit {
		return false
	}
	limiter.requests[key] = append(pruned, now)
	return true
}

func (limiter *requestLimiter) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	values := limiter.requests[key]
	if len(values) == 0 {
		return []time.Time{}
	}

	threshold := now.Add(-window)
	pruned := make([]time.Time, 0, len(values))
	for _, value := range values {
		if value.After(threshold) {
			pruned = append(pruned, value)
		}
	}

	if len(pruned) == 0 {
		delete(limiter.requests, key)
		return []time.Time{}
	}

	limiter.requests[key] = pruned
	return pruned
}

func (limiter *requestLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			limiter.sweepExpired(now)
		}
	}
}

func (limiter *requestLimiter) sweepExpired(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for key := range limiter.requests {
		limiter.pruneLocked(key, now, requestLimitWindow)
	}
}

func readLimiterKey(userID uint) string {
	return fmt.Sprintf("read:%d", userID)
}

func mutationLimiterKey(userID uint) string {
	return fmt.Sprintf("mutation:%d", userID)
}
