package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The primary key is the platform-assigned user identifier.
type UserRepository interface {
	// Upsert inserts the user or replaces the existing row with the same ID.
	Upsert(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by the platform identifier.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindRecent returns up to limit users, most recently registered first.
	FindRecent(ctx context.Context, limit int) ([]*entity.User, error)
}
