package auth

import (
	"context"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads the user directory.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUsername loads the user for a username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user, admins first for the login picker.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	var rows []models.User
	err := r.db.WithContext(ctx).Order("role ASC, username ASC").Find(&rows).Error
	return rows, err
}
