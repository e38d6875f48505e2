package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PageCachePrefix is the key prefix for cached home feed pages
	PageCachePrefix = "page:index:"
)

// PageCache memoizes the rendered home feed, keyed by page number only —
// never by viewer. The cached payload is served to everyone, so it must not
// contain viewer-specific content. Entries expire on their TTL; post writes
// do not invalidate them, staleness within the TTL window is accepted.
type PageCache interface {
	// Get returns the cached rendered page, or (nil, false, nil) on a miss.
	Get(ctx context.Context, page int) (body []byte, found bool, err error)

	// Set stores a rendered page with the given TTL.
	Set(ctx context.Context, page int, body []byte, ttl time.Duration) error
}

// RedisPageCache implements PageCache using plain Redis strings with expiry.
type RedisPageCache struct {
	client *redis.Client
}

// NewPageCache creates a PageCache backed by Redis.
func NewPageCache(client *redis.Client) PageCache {
	return &RedisPageCache{client: client}
}

func pageKey(page int) string {
	return fmt.Sprintf("%s%d", PageCachePrefix, page)
}

func (c *RedisPageCache) Get(ctx context.Context, page int) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, pageKey(page)).Bytes()
	if err == redis.Nil {
		log.Printf("[PageCache] Get: page=%d MISS", page)
		return nil, false, nil
	}
	if err != nil {
		log.Printf("[PageCache] Get FAILED: page=%d err=%v", page, err)
		return nil, false, fmt.Errorf("get cached page: %w", err)
	}

	log.Printf("[PageCache] Get: page=%d HIT bytes=%d", page, len(body))
	return body, true, nil
}

func (c *RedisPageCache) Set(ctx context.Context, page int, body []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, pageKey(page), body, ttl).Err(); err != nil {
		log.Printf("[PageCache] Set FAILED: page=%d err=%v", page, err)
		return fmt.Errorf("set cached page: %w", err)
	}

	log.Printf("[PageCache] Set OK: page=%d bytes=%d ttl=%v", page, len(body), ttl)
	return nil
}
