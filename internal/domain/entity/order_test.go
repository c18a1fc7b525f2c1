package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"new to processing", OrderStatusNew, OrderStatusProcessing, true},
		{"new to cancelled", OrderStatusNew, OrderStatusCancelled, true},
		{"new to completed skips processing", OrderStatusNew, OrderStatusCompleted, false},
		{"processing to completed", OrderStatusProcessing, OrderStatusCompleted, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"processing back to new", OrderStatusProcessing, OrderStatusNew, false},
		{"completed is terminal", OrderStatusCompleted, OrderStatusProcessing, false},
		{"completed cannot be cancelled", OrderStatusCompleted, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusProcessing, false},
		{"cancelled cannot complete", OrderStatusCancelled, OrderStatusCompleted, false},
		{"no self transition", OrderStatusNew, OrderStatusNew, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusNew.IsTerminal())
	assert.False(t, OrderStatusProcessing.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusNew.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestDeliveryType_Valid(t *testing.T) {
	assert.True(t, DeliveryTypePickup.Valid())
	assert.True(t, DeliveryTypeDelivery.Valid())
	assert.False(t, DeliveryType("drone").Valid())
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := &OrderItem{Quantity: 3, Price: 150}

	assert.InDelta(t, 450.0, item.LineTotal(), 0.0001)
}
