package service

import (
	"context"

	"bistro/internal/domain/entity"
)

// MenuCache is a read-through cache over the catalog. Misses and cache
// backend failures both fall back to the database; the cache is an
// optimization, never a source of truth.
type MenuCache interface {
	// GetCategories returns the cached category list, or ErrCacheMiss.
	GetCategories(ctx context.Context) ([]*entity.Category, error)

	// SetCategories stores the category list with the configured TTL.
	SetCategories(ctx context.Context, categories []*entity.Category) error

	// GetDishes returns the cached dishes of one category, or ErrCacheMiss.
	GetDishes(ctx context.Context, categoryID int64) ([]*entity.Dish, error)

	// SetDishes stores the dishes of one category with the configured TTL.
	SetDishes(ctx context.Context, categoryID int64, dishes []*entity.Dish) error

	// Invalidate drops all cached catalog entries. Called after any
	// catalog mutation so stale menus never outlive an admin edit.
	Invalidate(ctx context.Context) error
}
