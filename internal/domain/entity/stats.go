package entity

// OrderStats are the admin dashboard aggregates. Revenue and the average
// cover orders of every status, cancelled ones included.
type OrderStats struct {
	TotalOrders  int64
	AverageTotal float64
	TotalRevenue float64
}
