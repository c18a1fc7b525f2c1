package model

import "time"

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
// OrderID is nullable: general feedback is not tied to an order.
type FeedbackModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	OrderID   *int64 `gorm:"index"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
