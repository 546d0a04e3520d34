package transactions

import (
	"context"
	"time"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists the append-only sales ledger. Rows are only ever
// inserted; there is no update or delete path.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create appends one completed sale, lines included.
func (r *Repository) Create(ctx context.Context, trx *models.Transaction) (*models.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(trx).Error; err != nil {
		return nil, err
	}
	return trx, nil
}

// FindByID loads one sale with its lines.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	var trx models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&trx, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// List returns the full ledger, newest sale first.
func (r *Repository) List(ctx context.Context) ([]models.Transaction, error) {
	var rows []models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("seq DESC").
		Find(&rows).
		Error
	return rows, err
}

// ListRange returns sales whose timestamp falls in [from, to), newest first.
// An empty cashierID matches every cashier.
func (r *Repository) ListRange(ctx context.Context, from, to time.Time, cashierID string) ([]models.Transaction, error) {
	q := r.db.WithContext(ctx).
		Preload("Lines").
		Where("timestamp >= ? AND timestamp < ?", from, to)
	if cashierID != "" {
		q = q.Where("cashier_id = ?", cashierID)
	}

	var rows []models.Transaction
	err := q.Order("seq DESC").Find(&rows).Error
	return rows, err
}
