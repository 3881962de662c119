package imagecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

const keyPrefix = "image:"

var ErrCacheUnavailable = errors.New("imagecache: redis request failed")

// Cache keeps served image blobs in Redis
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// NewFromURL parses a redis:// URL and pings the server
func NewFromURL(ctx context.Context, url string, ttl time.Duration) (*Cache, *redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("%w: ping: %v", ErrCacheUnavailable, err)
	}

	return New(client, ttl), client, nil
}

type entry struct {
	ContentType string `json:"content_type"`
	ETag        string `json:"etag"`
	Body        []byte `json:"body"`
}

// Get returns the cached file; ok is false on a miss
func (c *Cache) Get(ctx context.Context, key string) (file *domain.ImageFile, ok bool, err error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrCacheUnavailable, key, err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false, fmt.Errorf("%w: decode %s: %v", ErrCacheUnavailable, key, err)
	}

	return &domain.ImageFile{ContentType: e.ContentType, ETag: e.ETag, Body: e.Body}, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, file *domain.ImageFile) error {
	raw, err := json.Marshal(entry{ContentType: file.ContentType, ETag: file.ETag, Body: file.Body})
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCacheUnavailable, key, err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, string(raw), c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCacheUnavailable, key, err)
	}
	return nil
}

// Invalidate drops a key after the blob is deleted
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", ErrCacheUnavailable, key, err)
	}
	return nil
}
