package entity

import "time"

// OrderStatus is the lifecycle state of an order.
//
// The machine is strictly linear with a cancellation escape hatch:
//
//	new -> processing -> completed
//	new | processing -> cancelled
//
// completed and cancelled are terminal. Only administrators advance status;
// the customer-facing flow never sets it directly.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the status machine permits s -> next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusNew:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	default:
		return false
	}
}

// DeliveryType says how the customer receives the order.
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

// Valid reports whether t is a known delivery type.
func (t DeliveryType) Valid() bool {
	return t == DeliveryTypePickup || t == DeliveryTypeDelivery
}

// Order is an immutable snapshot of a checked-out cart. Everything except
// Status is fixed at creation; TotalAmount is computed once from the cart
// and the promo discount and is never recomputed from live dish prices.
type Order struct {
	ID           int64
	UserID       int64
	TotalAmount  float64
	DeliveryType DeliveryType
	Address      string // Required iff DeliveryType is delivery.
	Phone        string // Snapshot of the contact phone at checkout.
	Status       OrderStatus
	CreatedAt    time.Time

	Items []*OrderItem
}

// OrderItem freezes a dish's name, unit price and ordered quantity at the
// moment of purchase. Later catalog edits or dish deletion do not rewrite it.
type OrderItem struct {
	ID       int64
	OrderID  int64
	DishID   int64
	Name     string
	Quantity int
	Price    float64 // Unit price at purchase time.
}

// LineTotal is the frozen price of this item.
func (i *OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.Price
}
