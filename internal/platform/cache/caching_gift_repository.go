// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"giftlink_backend/internal/feature/gifts/domain/entity"
	"giftlink_backend/internal/feature/gifts/usecase"
)

// CachingGiftRepository decorates a GiftRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. With a nil Redis client every call
// goes straight to the inner repository.
type CachingGiftRepository struct {
	inner     usecase.GiftRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingGiftRepository decorates a GiftRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "gifts".
func NewCachingGiftRepository(rdb *redis.Client, ttl time.Duration, inner usecase.GiftRepository, namespace string) *CachingGiftRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "gifts"
	}
	return &CachingGiftRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves all gifts, checking the cache first then falling back to the
// database.
func (c *CachingGiftRepository) List(ctx context.Context) ([]entity.Gift, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Gift
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves a single gift, checking the cache first then falling
// back to the database. Misses of the "gift not found" kind are not cached.
func (c *CachingGiftRepository) FindByID(ctx context.Context, id uint) (*entity.Gift, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.giftKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Gift
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Search always hits the database: the filter space is unbounded, so cached
// search results would mostly be dead weight.
func (c *CachingGiftRepository) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Gift, error) {
	return c.inner.Search(ctx, q)
}

// Create inserts the gift and invalidates the cached listings.
func (c *CachingGiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	if err := c.inner.Create(ctx, gift); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	// Best effort: a stale cache entry expires via TTL anyway.
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

// listKey is the cache key for the full listing.
func (c *CachingGiftRepository) listKey() string {
	return fmt.Sprintf("%s:all", c.namespace)
}

// giftKey is the cache key for a single gift.
func (c *CachingGiftRepository) giftKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingGiftRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
