package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

// ErrClientClosed is returned by HealthCheck once Close has run
var ErrClientClosed = errors.New("redis client is closed")

// RedisClient holds the go-redis client shared by the rate-limit counters.
// Timeouts are kept below a second; the limiter lets requests through when
// a command times out.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(addr, password string, db int) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   1,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		}),
	}
}

func (r *RedisClient) ping(ctx context.Context) error {
	if r.Client == nil {
		return ErrClientClosed
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", r.Client.Options().Addr, err)
	}
	return nil
}

// Connect verifies the server answers. go-redis dials lazily, so this is the
// only point where a bad REDIS_HOST is noticed at startup.
func (r *RedisClient) Connect(ctx context.Context) error {
	if err := r.ping(ctx); err != nil {
		return err
	}

	log.Info().
		Str("component", "redis").
		Str("addr", r.Client.Options().Addr).
		Int("db", r.Client.Options().DB).
		Msg("Connected to Redis")
	return nil
}

func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.ping(ctx)
}

// Close releases the pool. Safe to call more than once.
func (r *RedisClient) Close() error {
	if r.Client == nil {
		return nil
	}
	err := r.Client.Close()
	r.Client = nil
	return err
}
