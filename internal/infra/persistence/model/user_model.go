package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
// The primary key is the platform-assigned user identifier, so rows are
// upserted rather than auto-generated.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(100)"`
	FullName     string `gorm:"type:varchar(200);not null"`
	Phone        string `gorm:"type:varchar(32);not null"`
	RegisteredAt time.Time
	ProfilePhoto string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
