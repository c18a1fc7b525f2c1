package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrCartLineNotFound is a domain-specific error returned when a cart line is not found.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the standard operations for basket persistence.
// Every method is scoped to the owning user; carts of different users never
// interleave.
type CartRepository interface {
	// FindLines returns the user's cart joined with live dish name and
	// price, in insertion order.
	FindLines(ctx context.Context, userID int64) ([]*entity.CartLine, error)

	// FindLine retrieves the single line for (user, dish), or
	// ErrCartLineNotFound.
	FindLine(ctx context.Context, userID, dishID int64) (*entity.CartLine, error)

	// Insert adds a new line and fills in its generated ID. At most one line
	// may exist per (user, dish); callers bump quantity via UpdateQuantity
	// instead of inserting twice.
	Insert(ctx context.Context, line *entity.CartLine) error

	// UpdateQuantity sets the stored quantity of a line. quantity must be
	// >= 1; a line that would reach zero is deleted by the caller instead.
	UpdateQuantity(ctx context.Context, lineID int64, quantity int) error

	// DeleteLine removes one line owned by the user. Removing an absent
	// line is a no-op, not an error.
	DeleteLine(ctx context.Context, userID, lineID int64) error

	// DeleteByUser clears the whole cart. Idempotent.
	DeleteByUser(ctx context.Context, userID int64) error
}
