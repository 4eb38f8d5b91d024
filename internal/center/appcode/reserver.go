package appcode

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	lscredis "lscmis/internal/platform/redis"
)

// MemoryReserver holds reservations in process memory. It only protects a single replica.
type MemoryReserver struct {
	mu    sync.Mutex
	ttl   time.Duration
	held  map[string]time.Time
	clock func() time.Time
}

func NewMemoryReserver(ttl time.Duration) *MemoryReserver {
	return &MemoryReserver{ttl: ttl, held: make(map[string]time.Time), clock: time.Now}
}

func (r *MemoryReserver) Reserve(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock()
	for k, expires := range r.held {
		if !now.Before(expires) {
			delete(r.held, k)
		}
	}
	if _, taken := r.held[code]; taken {
		return false, nil
	}
	r.held[code] = now.Add(r.ttl)
	return true, nil
}

// RedisReserver claims candidates with SET NX and a TTL so every replica sees them.
// When Redis is unreachable it degrades to the in-memory reserver.
type RedisReserver struct {
	client   redis.UniversalClient
	ttl      time.Duration
	fallback *MemoryReserver
	logger   *slog.Logger
}

func NewRedisReserver(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisReserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisReserver{
		client:   client,
		ttl:      ttl,
		fallback: NewMemoryReserver(ttl),
		logger:   logger,
	}
}

func (r *RedisReserver) Reserve(ctx context.Context, code string) (bool, error) {
	ok, err := r.client.SetNX(ctx, lscredis.Key("appcode", code), "1", r.ttl).Result()
	if err != nil {
		r.logger.WarnContext(ctx, "redis reservation failed, using in-memory fallback", "error", err)
		return r.fallback.Reserve(ctx, code)
	}
	return ok, nil
}
