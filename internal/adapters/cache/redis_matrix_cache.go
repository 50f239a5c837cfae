package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/platform/obs"
	redis "github.com/redis/go-redis/v9"
)

// DefaultMatrixTTL bounds how long a matrix stays in Redis.
const DefaultMatrixTTL = 24 * time.Hour

// RedisMatrixCache shares built distance matrices between server instances.
type RedisMatrixCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisMatrixCache(rdb *redis.Client, ttl time.Duration) *RedisMatrixCache {
	if ttl <= 0 {
		ttl = DefaultMatrixTTL
	}
	return &RedisMatrixCache{rdb: rdb, ttl: ttl}
}

// NewRedisMatrixCacheFromURL connects using a redis:// URL.
func NewRedisMatrixCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisMatrixCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis matrix cache: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis matrix cache: ping: %w", err)
	}
	return NewRedisMatrixCache(rdb, ttl), nil
}

func (c *RedisMatrixCache) Get(ctx context.Context, key string) (_ *domain.DistanceMatrix, _ bool, err error) {
	defer obs.Time(ctx, "matrix.cache.redis.Get")(&err)

	if c.rdb == nil {
		return nil, false, errors.New("matrix cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get matrix cache: key must not be empty")
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get matrix cache key=%q: %w", key, err)
	}

	m, err := decodeMatrix(raw)
	if err != nil {
		return nil, false, fmt.Errorf("get matrix cache key=%q: %w", key, err)
	}
	return m, true, nil
}

func (c *RedisMatrixCache) Put(ctx context.Context, key string, m *domain.DistanceMatrix) (err error) {
	defer obs.Time(ctx, "matrix.cache.redis.Put")(&err)

	if c.rdb == nil {
		return errors.New("matrix cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert matrix cache: key must not be empty")
	}

	raw, err := encodeMatrix(m)
	if err != nil {
		return fmt.Errorf("insert matrix cache: %w", err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert matrix cache key=%q: %w", key, err)
	}
	return nil
}

func (c *RedisMatrixCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
