package entity

// Dish is a single orderable menu position. Price is the live catalog price;
// orders freeze their own copy of it at checkout time (see OrderItem).
type Dish struct {
	ID          int64
	Name        string
	Description string
	Price       float64 // Non-negative.
	CategoryID  int64
}

// DishUpdate describes a partial update to a dish. Nil fields are left
// untouched. Keeping the updatable fields statically enumerated avoids the
// free-form column-map style of updates.
type DishUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *int64
}

// IsEmpty reports whether the update would change nothing.
func (u *DishUpdate) IsEmpty() bool {
	return u == nil || (u.Name == nil && u.Description == nil && u.Price == nil && u.CategoryID == nil)
}
