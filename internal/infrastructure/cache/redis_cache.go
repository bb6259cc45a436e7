package cache

import (
	"context"
	"encoding/json"
	"time"

	"socialdots/internal/usecase/interfaces"

	gocache "github.com/go-redis/cache/v9"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const localCacheSize = 1000

// Cache is a two-level cache: an in-process TinyLFU in front of Redis.
// With a nil Redis client it degrades to the local level only.
type Cache struct {
	cache *gocache.Cache
}

var _ interfaces.ICache = (*Cache)(nil)

func New(rdb *redis.Client, localTTL time.Duration) *Cache {
	opts := &gocache.Options{
		LocalCache: gocache.NewTinyLFU(localCacheSize, localTTL),
		Marshal:    json.Marshal,
		Unmarshal:  json.Unmarshal,
	}
	if rdb != nil {
		opts.Redis = rdb
	}
	return &Cache{cache: gocache.New(opts)}
}

func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	err := c.cache.Get(ctx, key, dst)
	if errors.Is(err, gocache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "cache get %s", key)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	err := c.cache.Set(&gocache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   ttl,
	})
	return errors.Wrapf(err, "cache set %s", key)
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	err := c.cache.Delete(ctx, key)
	if err == nil || errors.Is(err, redis.Nil) {
		return nil
	}
	return errors.Wrapf(err, "cache delete %s", key)
}

// NewRedisClient parses a redis:// URL. An empty URL yields a nil client.
func NewRedisClient(url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parse REDIS_URL")
	}
	return redis.NewClient(opt), nil
}
