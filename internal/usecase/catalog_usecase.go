// Package usecase defines the application's business use case interfaces
// and their input/output types.
package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// AddDishInput carries the fields of a new dish.
type AddDishInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"category_id" validate:"required"`
}

// CatalogUsecase defines the menu management and browsing use cases.
// Reads go through the menu cache; every mutation invalidates it.
type CatalogUsecase interface {
	// AddCategory creates a category. Names shorter than 2 characters are
	// rejected; submitting an existing name again is an idempotent no-op.
	AddCategory(ctx context.Context, name string) (*entity.Category, error)

	// DeleteCategory removes an empty category. Fails while any dish still
	// references it.
	DeleteCategory(ctx context.Context, id int64) error

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// AddDish creates a dish after validating price and category existence.
	AddDish(ctx context.Context, input *AddDishInput) (*entity.Dish, error)

	// UpdateDish applies a partial update to a dish.
	UpdateDish(ctx context.Context, id int64, update *entity.DishUpdate) error

	// DeleteDish removes a dish from the menu. Frozen order items survive.
	DeleteDish(ctx context.Context, id int64) error

	// GetDish retrieves one dish.
	GetDish(ctx context.Context, id int64) (*entity.Dish, error)

	// ListDishes returns the dishes of one category ordered by name.
	ListDishes(ctx context.Context, categoryID int64) ([]*entity.Dish, error)

	// ListAllDishes returns the whole menu ordered by category then name.
	ListAllDishes(ctx context.Context) ([]*entity.Dish, error)
}
