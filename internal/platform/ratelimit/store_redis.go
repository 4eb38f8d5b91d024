package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	lscredis "lscmis/internal/platform/redis"
)

// RedisStore keeps each window in a sorted set scored by request time, so every
// replica sees the same counts.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Allow(ctx context.Context, key string, limit Limit) (*Result, error) {
	now := time.Now()
	k := lscredis.Key("ratelimit", key)
	member := uuid.NewString()

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "-inf", strconv.FormatInt(now.Add(-limit.Window).UnixNano(), 10))
	pipe.ZAdd(ctx, k, redis.Z{Score: float64(now.UnixNano()), Member: member})
	card := pipe.ZCard(ctx, k)
	oldest := pipe.ZRangeWithScores(ctx, k, 0, 0)
	pipe.PExpire(ctx, k, limit.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit window %s: %w", key, err)
	}

	resetAt := now.Add(limit.Window)
	if first := oldest.Val(); len(first) == 1 {
		resetAt = time.Unix(0, int64(first[0].Score)).Add(limit.Window)
	}

	count := int(card.Val())
	if count > limit.Requests {
		if err := s.client.ZRem(ctx, k, member).Err(); err != nil {
			return nil, fmt.Errorf("rate limit release %s: %w", key, err)
		}
		return &Result{Allowed: false, Limit: limit.Requests, ResetAt: resetAt}, nil
	}
	return &Result{
		Allowed:   true,
		Limit:     limit.Requests,
		Remaining: limit.Requests - count,
		ResetAt:   resetAt,
	}, nil
}
