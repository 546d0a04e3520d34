package catalog

import (
	"context"
	"errors"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository persists the menu catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads a single menu item.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every menu item in insertion order.
func (r *Repository) List(ctx context.Context) ([]models.MenuItem, error) {
	var rows []models.MenuItem
	err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&rows).
		Error
	return rows, err
}

// Create inserts a new menu item, assigning the next list position.
func (r *Repository) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	tx := r.db.WithContext(ctx)

	var maxPosition int64
	if err := tx.Model(&models.MenuItem{}).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).
		Error; err != nil {
		return nil, err
	}
	item.Position = maxPosition + 1

	if err := tx.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces the stored row for the item's id.
func (r *Repository) Update(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item. Historical transaction lines keep their own
// snapshot of the item and are untouched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementStock reduces stock by qty with a guard that keeps stock from
// going negative. The guarded UPDATE makes the decrement atomic inside the
// surrounding checkout transaction.
func (r *Repository) DecrementStock(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	res := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
			}
			return err
		}
		return pkgerrors.New(pkgerrors.CodeInsufficientStock, "stock is insufficient for requested quantity").
			WithDetails(map[string]any{"menu_item_id": id, "quantity": qty})
	}
	return nil
}

// ListCategories returns the category reference data.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

// FindCategory loads one category.
func (r *Repository) FindCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
