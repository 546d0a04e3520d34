package transactions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTransactionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	transactions := `
CREATE TABLE IF NOT EXISTS transactions (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  order_number TEXT NOT NULL,
  timestamp DATETIME NOT NULL,
  cashier_id TEXT NOT NULL,
  cashier_name TEXT NOT NULL,
  subtotal INTEGER NOT NULL,
  discount INTEGER NOT NULL DEFAULT 0,
  total INTEGER NOT NULL,
  payment_method TEXT NOT NULL,
  created_at DATETIME
);`
	lines := `
CREATE TABLE IF NOT EXISTS transaction_lines (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  transaction_id TEXT NOT NULL,
  menu_item_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price INTEGER NOT NULL,
  quantity INTEGER NOT NULL
);`

	for _, stmt := range []string{transactions, lines} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func testSale(id string, ts time.Time, cashierID string, total int) *models.Transaction {
	return &models.Transaction{
		ID:            id,
		OrderNumber:   "TRX-" + id,
		Timestamp:     ts,
		CashierID:     cashierID,
		CashierName:   "Siti (Kasir)",
		Subtotal:      total,
		Total:         total,
		PaymentMethod: enums.PaymentMethodCash,
		Lines: []models.TransactionLine{
			{MenuItemID: "m1", Name: "Nasi Goreng Spesial", Price: total, Quantity: 1},
		},
	}
}

func TestRepositoryListNewestFirst(t *testing.T) {
	db := setupTransactionsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, testSale(fmt.Sprintf("t%d", i+1), base.Add(time.Duration(i)*time.Minute), "u2", 25000))
		require.NoError(t, err)
	}

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "t3", rows[0].ID)
	assert.Equal(t, "t1", rows[2].ID)
	require.Len(t, rows[0].Lines, 1)
	assert.Equal(t, "Nasi Goreng Spesial", rows[0].Lines[0].Name)
}

func TestRepositoryListRange(t *testing.T) {
	db := setupTransactionsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, testSale("t1", day.Add(9*time.Hour), "u2", 25000))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testSale("t2", day.Add(20*time.Hour), "u1", 35000))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testSale("t3", day.Add(26*time.Hour), "u2", 5000))
	require.NoError(t, err)

	sameDay, err := repo.ListRange(ctx, day, day.Add(24*time.Hour), "")
	require.NoError(t, err)
	assert.Len(t, sameDay, 2)

	byCashier, err := repo.ListRange(ctx, day, day.Add(48*time.Hour), "u2")
	require.NoError(t, err)
	require.Len(t, byCashier, 2)
	assert.Equal(t, "t3", byCashier[0].ID, "newest first")
}

func TestRepositoryRejectsDuplicateSaleID(t *testing.T) {
	db := setupTransactionsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	ts := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, testSale("t1", ts, "u2", 25000))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testSale("t1", ts, "u2", 25000))
	assert.Error(t, err)
}
