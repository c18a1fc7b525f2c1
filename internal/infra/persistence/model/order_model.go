package model

import "time"

// OrderModel is the GORM-specific struct for the 'orders' table.
// Only the status column mutates after insert.
type OrderModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	UserID       int64   `gorm:"not null;index"`
	TotalAmount  float64 `gorm:"type:numeric(10,2);not null"`
	DeliveryType string  `gorm:"type:varchar(20);not null"`
	Address      string  `gorm:"type:text"`
	Phone        string  `gorm:"type:varchar(32);not null"`
	Status       string  `gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt    time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Name and price are frozen copies taken from the dish at checkout, so
// later menu edits never rewrite past orders.
type OrderItemModel struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	OrderID  int64   `gorm:"not null;index"`
	DishID   int64   `gorm:"not null"`
	Name     string  `gorm:"type:varchar(200);not null"`
	Quantity int     `gorm:"not null"`
	Price    float64 `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
