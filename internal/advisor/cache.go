package advisor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReplyCache stores deterministic advisor replies keyed by normalized
// utterance. LLM-generated replies are never cached.
type ReplyCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, reply string)
}

// cacheKey normalizes an utterance into a cache key.
func cacheKey(utterance string) string {
	return "reply:" + strings.Join(strings.Fields(strings.ToLower(utterance)), " ")
}

// MemoryReplyCache is the default in-process cache.
type MemoryReplyCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	reply   string
	expires time.Time
}

// NewMemoryReplyCache creates an in-memory cache with the given TTL.
// A non-positive TTL keeps entries for one hour.
func NewMemoryReplyCache(ttl time.Duration) *MemoryReplyCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MemoryReplyCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryReplyCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return "", false
	}
	return entry.reply, true
}

func (c *MemoryReplyCache) Set(_ context.Context, key, reply string) {
	c.mu.Lock()
	c.entries[key] = memoryEntry{reply: reply, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// RedisReplyCache shares deterministic replies across instances. Cache
// failures are treated as misses; they never affect the reply itself.
type RedisReplyCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisReplyCache creates a Redis-backed cache with the given TTL.
func NewRedisReplyCache(client *redis.Client, ttl time.Duration) *RedisReplyCache {
	if client == nil {
		panic("advisor: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisReplyCache{redis: client, ttl: ttl}
}

func (c *RedisReplyCache) Get(ctx context.Context, key string) (string, bool) {
	reply, err := c.redis.Get(ctx, redisCacheKey(key)).Result()
	if err != nil {
		return "", false
	}
	return reply, true
}

func (c *RedisReplyCache) Set(ctx context.Context, key, reply string) {
	// Best effort: a failed write only costs a future cache miss.
	_ = c.redis.Set(ctx, redisCacheKey(key), reply, c.ttl).Err()
}

func redisCacheKey(key string) string {
	return fmt.Sprintf("advisor:%s", key)
}
