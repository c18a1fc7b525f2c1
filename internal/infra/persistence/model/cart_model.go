package model

import "time"

// CartModel is the GORM-specific struct for the 'cart' table.
// The (user_id, dish_id) pair is unique: adding the same dish twice bumps
// the quantity of the existing row instead of inserting a second one.
type CartModel struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	UserID   int64 `gorm:"not null;uniqueIndex:idx_cart_user_dish,priority:1"`
	DishID   int64 `gorm:"not null;uniqueIndex:idx_cart_user_dish,priority:2"`
	Quantity int   `gorm:"not null;default:1"`
	AddedAt  time.Time

	Dish *DishModel `gorm:"foreignKey:DishID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "cart"
}
