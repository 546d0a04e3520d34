package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"gorm.io/gorm"
)

// ListFilter narrows the menu listing for the order-entry view.
type ListFilter struct {
	ActiveOnly bool
	Search     string
}

// Service exposes catalog operations.
type Service interface {
	AddItem(ctx context.Context, draft MenuDraft) (*models.MenuItem, error)
	UpdateItem(ctx context.Context, id string, draft MenuDraft) (*models.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (*models.MenuItem, error)
	ListItems(ctx context.Context, filter ListFilter) ([]models.MenuItem, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DecrementStock(ctx context.Context, id string, qty int) error
}

type service struct {
	repo *Repository
}

// NewService builds the catalog service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// AddItem validates the draft and inserts a new menu item. A colliding id
// fails with DUPLICATE_ID and leaves the catalog unchanged.
func (s *service) AddItem(ctx context.Context, draft MenuDraft) (*models.MenuItem, error) {
	item, err := draft.Build()
	if err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, item.CategoryID); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, item.ID); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDuplicateID, "menu item id already exists").
			WithDetails(map[string]string{"id": item.ID})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check menu item id")
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert menu item")
	}
	return created, nil
}

// UpdateItem replaces the stored item, including manual restock and status
// changes. Committed transactions keep their own snapshots and are unaffected.
func (s *service) UpdateItem(ctx context.Context, id string, draft MenuDraft) (*models.MenuItem, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}

	draft.ID = id
	item, err := draft.Build()
	if err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, item.CategoryID); err != nil {
		return nil, err
	}

	item.Position = existing.Position
	item.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update menu item")
	}
	return updated, nil
}

// DeleteItem removes the item; a missing id is reported as NOT_FOUND.
func (s *service) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete menu item")
	}
	return nil
}

func (s *service) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	return item, nil
}

// ListItems returns the catalog in insertion order, optionally narrowed to
// active items matching a case-insensitive name search.
func (s *service) ListItems(ctx context.Context, filter ListFilter) ([]models.MenuItem, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}

	if !filter.ActiveOnly && filter.Search == "" {
		return rows, nil
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := make([]models.MenuItem, 0, len(rows))
	for _, item := range rows {
		if filter.ActiveOnly && item.Status != enums.MenuStatusActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return rows, nil
}

// DecrementStock exposes the guarded decrement for callers outside a
// checkout transaction (e.g. spoilage adjustments).
func (s *service) DecrementStock(ctx context.Context, id string, qty int) error {
	return s.repo.DecrementStock(ctx, id, qty)
}

func (s *service) ensureCategory(ctx context.Context, categoryID string) error {
	if _, err := s.repo.FindCategory(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown category").
				WithDetails(map[string]string{"category_id": categoryID})
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	return nil
}
