// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// Create persists a new category. Inserting a name that already exists
	// is an idempotent no-op, mirroring INSERT ... ON CONFLICT DO NOTHING.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a single category by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindAll returns every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Delete removes a category by ID. Returns ErrCategoryNotFound when the
	// row does not exist. Referential protection (no delete while dishes
	// reference the category) is enforced by the use case, inside a
	// transaction, before calling Delete.
	Delete(ctx context.Context, id int64) error
}
