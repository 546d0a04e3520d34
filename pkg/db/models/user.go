package models

import (
	"time"

	"github.com/adiwijaya/warungpos-backend/pkg/enums"
)

// User is an entry in the fixed cashier directory. Login is a username
// lookup; there are no passwords.
type User struct {
	ID        string         `gorm:"column:id;primaryKey"`
	Username  string         `gorm:"column:username;uniqueIndex;not null"`
	Name      string         `gorm:"column:name;not null"`
	Role      enums.UserRole `gorm:"column:role;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table name.
func (User) TableName() string { return "users" }
