package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrDishNotFound is a domain-specific error returned when a dish is not found.
var ErrDishNotFound = errors.New("dish not found")

// DishRepository defines the standard operations for dish persistence.
type DishRepository interface {
	// Create persists a new dish and fills in its generated ID.
	Create(ctx context.Context, dish *entity.Dish) error

	// FindByID retrieves a single dish by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Dish, error)

	// FindByCategory returns the dishes of one category ordered by name.
	FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Dish, error)

	// FindAll returns every dish ordered by category then name.
	FindAll(ctx context.Context) ([]*entity.Dish, error)

	// Update applies a partial update. Returns ErrDishNotFound when the dish
	// does not exist.
	Update(ctx context.Context, id int64, update *entity.DishUpdate) error

	// Delete removes a dish. Historical order items keep their frozen copy
	// of the dish name and price and are not touched.
	Delete(ctx context.Context, id int64) error

	// CountByCategory reports how many dishes reference a category.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}
