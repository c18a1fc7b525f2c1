package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"
	"bistro/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	categoriesKey  = "menu:categories"
	dishKeyPrefix  = "menu:dishes:"
	defaultMenuTTL = 5 * time.Minute
)

// menuCache implements service.MenuCache on Redis. Entries are JSON blobs
// with a shared TTL; Invalidate drops everything under the menu prefix.
type menuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache is the constructor for menuCache.
func NewMenuCache(client *redis.Client, cfg *config.Config) service.MenuCache {
	ttl := defaultMenuTTL
	if cfg.Cache != nil && cfg.Cache.MenuTTL > 0 {
		ttl = cfg.Cache.MenuTTL
	}

	return &menuCache{
		client: client,
		ttl:    ttl,
	}
}

// GetCategories returns the cached category list.
func (c *menuCache) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read cached categories")
	}

	var categories []*entity.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached categories")
	}

	return categories, nil
}

// SetCategories stores the category list.
func (c *menuCache) SetCategories(ctx context.Context, categories []*entity.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return errors.Wrap(err, "failed to encode categories")
	}

	if err := c.client.Set(ctx, categoriesKey, raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache categories")
	}

	return nil
}

// GetDishes returns the cached dishes of one category.
func (c *menuCache) GetDishes(ctx context.Context, categoryID int64) ([]*entity.Dish, error) {
	raw, err := c.client.Get(ctx, dishKey(categoryID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read cached dishes")
	}

	var dishes []*entity.Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached dishes")
	}

	return dishes, nil
}

// SetDishes stores the dishes of one category.
func (c *menuCache) SetDishes(ctx context.Context, categoryID int64, dishes []*entity.Dish) error {
	raw, err := json.Marshal(dishes)
	if err != nil {
		return errors.Wrap(err, "failed to encode dishes")
	}

	if err := c.client.Set(ctx, dishKey(categoryID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache dishes")
	}

	return nil
}

// Invalidate drops all cached catalog entries.
func (c *menuCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "menu:*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan menu cache keys")
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to drop menu cache keys")
	}

	return nil
}

func dishKey(categoryID int64) string {
	return dishKeyPrefix + strconv.FormatInt(categoryID, 10)
}
