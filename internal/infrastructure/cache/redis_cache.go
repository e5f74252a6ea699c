package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const listKeyPattern = "videos:list:*"

// RedisVideoCache keeps rendered catalog listings in redis. A cache failure is
// never fatal: callers fall through to the database.
type RedisVideoCache struct {
	rdb *redis.Client
}

func NewRedisVideoCache(rdb *redis.Client) *RedisVideoCache {
	return &RedisVideoCache{rdb: rdb}
}

func (c *RedisVideoCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Cache get failed for %s: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

func (c *RedisVideoCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("Cache set failed for %s: %v", key, err)
	}
}

func (c *RedisVideoCache) InvalidateLists(ctx context.Context) {
	keys, err := c.rdb.Keys(ctx, listKeyPattern).Result()
	if err != nil {
		log.Printf("Cache invalidation scan failed: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Cache invalidation failed: %v", err)
	}
}
