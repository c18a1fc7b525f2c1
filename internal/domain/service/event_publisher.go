package service

import (
	"context"
	"time"

	"bistro/internal/domain/entity"
)

// Event types emitted on the order stream.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message published whenever an order is created or
// changes status. Consumers key on OrderID for per-order ordering.
type OrderEvent struct {
	Type       string             `json:"type"`
	OrderID    int64              `json:"order_id"`
	UserID     int64              `json:"user_id"`
	Status     entity.OrderStatus `json:"status"`
	PrevStatus entity.OrderStatus `json:"prev_status,omitempty"`
	Total      float64            `json:"total"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// EventPublisher publishes order lifecycle events to the message broker.
// Publishing happens after the owning transaction commits; a publish
// failure is logged by the caller and never rolls back the order.
type EventPublisher interface {
	Publish(ctx context.Context, event *OrderEvent) error
	Close() error
}
