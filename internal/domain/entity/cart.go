package entity

import "time"

// CartLine is one (user, dish, quantity) row of a customer's basket. At most
// one line exists per (user, dish) pair; adding the same dish again bumps the
// quantity. A line whose quantity would drop to zero is deleted, never stored.
//
// DishName and UnitPrice are joined in from the live dish record when the
// cart is read. They are display values: the cart total intentionally tracks
// the current catalog price until checkout freezes it into the order.
type CartLine struct {
	ID       int64
	UserID   int64
	DishID   int64
	Quantity int // Always >= 1.
	AddedAt  time.Time

	DishName  string
	UnitPrice float64
}

// LineTotal is the live price of this line.
func (l *CartLine) LineTotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// CartTotal sums the live line totals of a basket.
func CartTotal(lines []*CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.LineTotal()
	}

	return total
}
