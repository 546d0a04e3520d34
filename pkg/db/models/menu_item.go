package models

import (
	"time"

	"github.com/adiwijaya/warungpos-backend/pkg/enums"
)

// MenuItem is a sellable catalog entry. The id is caller-supplied (the
// original catalog uses short ids like "m1") and price is stored in the
// smallest currency unit. Position preserves insertion order for listing.
type MenuItem struct {
	ID         string           `gorm:"column:id;primaryKey"`
	Name       string           `gorm:"column:name;not null"`
	CategoryID string           `gorm:"column:category_id;not null;index"`
	Price      int              `gorm:"column:price;not null"`
	Stock      int              `gorm:"column:stock;not null;default:0"`
	Status     enums.MenuStatus `gorm:"column:status;not null;default:active"`
	Image      *string          `gorm:"column:image"`
	Position   int64            `gorm:"column:position;not null"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name.
func (MenuItem) TableName() string { return "menu_items" }
