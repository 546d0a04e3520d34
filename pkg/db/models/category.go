package models

// Category is read-only reference data seeded at first run.
type Category struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

// TableName pins the table name.
func (Category) TableName() string { return "categories" }
