package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// CartView is a customer's basket joined with live dish data.
type CartView struct {
	Lines []*entity.CartLine `json:"lines"`
	Total float64            `json:"total"`
}

// CartUsecase defines the basket use cases. All operations are scoped to
// one user; quantities are always >= 1 in storage.
type CartUsecase interface {
	// Add puts qty units of a dish into the cart. An existing line for the
	// same dish accumulates quantity instead of duplicating.
	Add(ctx context.Context, userID, dishID int64, qty int) error

	// RemoveLine deletes one line. Removing an absent line is a no-op.
	RemoveLine(ctx context.Context, userID, lineID int64) error

	// ChangeQuantity adjusts a line's quantity by delta. A missing line is
	// an error; a quantity that would reach zero deletes the line.
	ChangeQuantity(ctx context.Context, userID, dishID int64, delta int) error

	// View returns the cart with live prices and the running total.
	View(ctx context.Context, userID int64) (*CartView, error)

	// Total computes the live cart total.
	Total(ctx context.Context, userID int64) (float64, error)

	// Clear empties the cart. Idempotent.
	Clear(ctx context.Context, userID int64) error
}
