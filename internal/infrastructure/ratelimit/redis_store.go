package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisStore keeps one INCR counter per client and window. The key TTL is
// relative to the local clock, never an absolute Redis timestamp.
type RedisStore struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisStore(client *redis.Client, limit int, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (s *RedisStore) key(clientKey string, start time.Time) string {
	return redisKeyPrefix + clientKey + ":" + strconv.FormatInt(start.Unix(), 10)
}

func (s *RedisStore) Hit(ctx context.Context, clientKey string) (Result, error) {
	now := s.now()
	start := windowStart(now, s.window)
	resetAt := start.Add(s.window)
	key := s.key(clientKey, start)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.PExpire(ctx, key, resetAt.Sub(now))
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("rate limit counter: %w", err)
	}

	return newResult(incr.Val(), s.limit, resetAt), nil
}
