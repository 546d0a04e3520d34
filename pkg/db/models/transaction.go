package models

import (
	"time"

	"github.com/adiwijaya/warungpos-backend/pkg/enums"
)

// Transaction is a committed sale. Rows are append-only: the engine never
// updates or deletes them. Seq preserves insertion order; display listings
// run seq DESC for most-recent-first.
type Transaction struct {
	Seq           int64               `gorm:"column:seq;primaryKey;autoIncrement"`
	ID            string              `gorm:"column:id;uniqueIndex;not null"`
	OrderNumber   string              `gorm:"column:order_number;not null"`
	Timestamp     time.Time           `gorm:"column:timestamp;not null;index"`
	CashierID     string              `gorm:"column:cashier_id;not null;index"`
	CashierName   string              `gorm:"column:cashier_name;not null"`
	Subtotal      int                 `gorm:"column:subtotal;not null"`
	Discount      int                 `gorm:"column:discount;not null;default:0"`
	Total         int                 `gorm:"column:total;not null"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;not null"`
	Lines         []TransactionLine   `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table name.
func (Transaction) TableName() string { return "transactions" }

// TransactionLine is a frozen snapshot of a cart line. Name and price are
// copied at sale time so later menu edits never rewrite history.
type TransactionLine struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID string `gorm:"column:transaction_id;not null;index"`
	MenuItemID    string `gorm:"column:menu_item_id;not null"`
	Name          string `gorm:"column:name;not null"`
	Price         int    `gorm:"column:price;not null"`
	Quantity      int    `gorm:"column:quantity;not null"`
}

// TableName pins the table name.
func (TransactionLine) TableName() string { return "transaction_lines" }
