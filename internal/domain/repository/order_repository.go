package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are immutable after creation except for their status column.
type OrderRepository interface {
	// Create persists the order header together with all of its items and
	// fills in the generated identifiers. Callers run this inside the
	// checkout transaction so the order, its items and the cart clear
	// commit or roll back as one.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its frozen items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByUser returns the user's orders, most recent first. Items are
	// not loaded.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// UpdateStatus sets the status column. Transition legality is validated
	// by the use case; returns ErrOrderNotFound for an unknown order.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	// Stats computes the admin aggregates (count, average, revenue) over
	// all orders regardless of status.
	Stats(ctx context.Context) (*entity.OrderStats, error)

	// FindRecent returns up to limit orders, most recent first. Items are
	// not loaded.
	FindRecent(ctx context.Context, limit int) ([]*entity.Order, error)
}
