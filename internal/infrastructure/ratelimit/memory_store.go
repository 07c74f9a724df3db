package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used when no Redis is configured.
// Every client shares the same aligned window, so the whole map is dropped
// when the window rolls over.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int64
	start  time.Time
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	return &MemoryStore{
		counts: make(map[string]int64),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (s *MemoryStore) Hit(_ context.Context, key string) (Result, error) {
	start := windowStart(s.now(), s.window)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !start.Equal(s.start) {
		s.start = start
		s.counts = make(map[string]int64)
	}
	s.counts[key]++

	return newResult(s.counts[key], s.limit, start.Add(s.window)), nil
}
