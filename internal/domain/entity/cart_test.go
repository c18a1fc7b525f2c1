package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	lines := []*CartLine{
		{Quantity: 2, UnitPrice: 350},
		{Quantity: 1, UnitPrice: 150},
	}

	assert.InDelta(t, 850.0, CartTotal(lines), 0.0001)
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Zero(t, CartTotal(nil))
	assert.Zero(t, CartTotal([]*CartLine{}))
}
