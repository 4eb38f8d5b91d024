package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps a sliding window per key in process memory. Not shared across
// replicas; use RedisStore when more than one instance serves traffic.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string][]time.Time), now: time.Now}
}

func (s *MemoryStore) Allow(_ context.Context, key string, limit Limit) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamps := prune(s.windows[key], now.Add(-limit.Window))
	if len(stamps) >= limit.Requests {
		s.windows[key] = stamps
		return &Result{Allowed: false, Limit: limit.Requests, ResetAt: stamps[0].Add(limit.Window)}, nil
	}

	stamps = append(stamps, now)
	s.windows[key] = stamps
	return &Result{
		Allowed:   true,
		Limit:     limit.Requests,
		Remaining: limit.Requests - len(stamps),
		ResetAt:   stamps[0].Add(limit.Window),
	}, nil
}

// prune drops timestamps at or before cutoff. stamps is ordered oldest first.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(stamps); i++ {
		if stamps[i].After(cutoff) {
			break
		}
	}
	return stamps[i:]
}
