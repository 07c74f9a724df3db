// Package ratelimit counts requests per client in fixed, wall-clock aligned
// windows. Two stores share the same semantics: RedisStore for counters that
// survive restarts and are shared between replicas, MemoryStore for a single
// process.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the state of a client's window after one hit
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store records a hit for key and reports whether it fits in the window
type Store interface {
	Hit(ctx context.Context, key string) (Result, error)
}

// windowStart aligns now to the beginning of its window
func windowStart(now time.Time, window time.Duration) time.Time {
	return now.Truncate(window)
}

func newResult(count int64, limit int, resetAt time.Time) Result {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
