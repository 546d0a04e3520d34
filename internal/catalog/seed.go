package catalog

import (
	"context"
	"fmt"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

var seedCategories = []models.Category{
	{ID: "1", Name: "Makanan Utama"},
	{ID: "2", Name: "Minuman"},
	{ID: "3", Name: "Snack"},
	{ID: "4", Name: "Dessert"},
}

var seedMenus = []models.MenuItem{
	{ID: "m1", Name: "Nasi Goreng Spesial", CategoryID: "1", Price: 25000, Stock: 50, Status: enums.MenuStatusActive, Image: strptr("https://picsum.photos/seed/nasigoreng/200"), Position: 1},
	{ID: "m2", Name: "Ayam Bakar Madu", CategoryID: "1", Price: 35000, Stock: 30, Status: enums.MenuStatusActive, Image: strptr("https://picsum.photos/seed/ayambakar/200"), Position: 2},
	{ID: "m3", Name: "Es Teh Manis", CategoryID: "2", Price: 5000, Stock: 100, Status: enums.MenuStatusActive, Image: strptr("https://picsum.photos/seed/esteh/200"), Position: 3},
	{ID: "m4", Name: "Kopi Susu Gula Aren", CategoryID: "2", Price: 18000, Stock: 40, Status: enums.MenuStatusActive, Image: strptr("https://picsum.photos/seed/kopi/200"), Position: 4},
	{ID: "m5", Name: "Kentang Goreng", CategoryID: "3", Price: 15000, Stock: 25, Status: enums.MenuStatusActive, Image: strptr("https://picsum.photos/seed/fries/200"), Position: 5},
	{ID: "m6", Name: "Pisang Goreng Keju", CategoryID: "4", Price: 12000, Stock: 20, Status: enums.MenuStatusActive, Image: strptr("https://picsum.photos/seed/banana/200"), Position: 6},
}

var seedUsers = []models.User{
	{ID: "u1", Username: "admin", Name: "Budi (Admin)", Role: enums.UserRoleAdmin},
	{ID: "u2", Username: "kasir1", Name: "Siti (Kasir)", Role: enums.UserRoleCashier},
}

// Seed loads the starter catalog and user accounts into an empty database.
// A database that already has categories is left untouched, so restarts do
// not resurrect deleted rows.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := append([]models.Category{}, seedCategories...)
	menus := append([]models.MenuItem{}, seedMenus...)
	users := append([]models.User{}, seedUsers...)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := tx.Create(&menus).Error; err != nil {
			return fmt.Errorf("seed menu items: %w", err)
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		return nil
	})
}
