package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// CheckoutInput carries everything needed to turn a cart into an order.
type CheckoutInput struct {
	UserID       int64               `json:"user_id" validate:"required"`
	DeliveryType entity.DeliveryType `json:"delivery_type" validate:"required"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone" validate:"required"`
	PromoCode    string              `json:"promo_code"`
}

// OrderUsecase defines the order lifecycle use cases.
type OrderUsecase interface {
	// Checkout freezes the cart into an order atomically: the order row,
	// its items and the cart clear commit or roll back as one. A recognized
	// promo code discounts the total; unknown codes are silently ignored.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// AdvanceStatus moves an order along the status machine. Illegal
	// transitions, including any move out of a terminal status, fail.
	AdvanceStatus(ctx context.Context, orderID int64, next entity.OrderStatus) error

	// GetDetails retrieves an order with its frozen items.
	GetDetails(ctx context.Context, orderID int64) (*entity.Order, error)

	// ListForUser returns the user's orders, most recent first.
	ListForUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// PickupCode renders the order's pickup reference as a PNG QR code.
	PickupCode(ctx context.Context, orderID int64) ([]byte, error)
}
