package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
)

type menuLoader interface {
	GetItem(ctx context.Context, id string) (*models.MenuItem, error)
}

// Service holds the in-progress cart for each cashier session. Carts live
// in memory only; a committed sale clears them, a restart loses them.
type Service interface {
	AddItem(ctx context.Context, cashierID, menuItemID string) (*Cart, error)
	ChangeQuantity(ctx context.Context, cashierID, menuItemID string, delta int) (*Cart, error)
	Get(cashierID string) *Cart
	Clear(cashierID string)
}

type service struct {
	catalog menuLoader

	mu    sync.Mutex
	carts map[string]*Cart
}

// NewService builds the cart engine backed by the catalog for stock lookups.
func NewService(catalog menuLoader) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("menu loader required")
	}
	return &service{
		catalog: catalog,
		carts:   map[string]*Cart{},
	}, nil
}

// AddItem puts one unit of the menu item into the cashier's cart. A sold-out
// item is rejected with OUT_OF_STOCK; pushing an existing line past the item's
// current stock is rejected with STOCK_EXCEEDED. Each add refreshes the line's
// stock ceiling from the catalog, so a restock raises it mid-session.
func (s *service) AddItem(ctx context.Context, cashierID, menuItemID string) (*Cart, error) {
	item, err := s.catalog.GetItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item.Status != enums.MenuStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item is not active").
			WithDetails(map[string]string{"menu_item_id": menuItemID})
	}
	if item.Stock <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeOutOfStock, "menu item is out of stock").
			WithDetails(map[string]string{"menu_item_id": menuItemID})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(cashierID)
	if line := cart.find(menuItemID); line != nil {
		if line.Quantity >= item.Stock {
			return nil, pkgerrors.New(pkgerrors.CodeStockExceeded, "requested quantity exceeds available stock").
				WithDetails(map[string]any{"menu_item_id": menuItemID, "stock": item.Stock})
		}
		line.Stock = item.Stock
		line.Quantity++
		return cart.clone(), nil
	}

	cart.Lines = append(cart.Lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Stock:      item.Stock,
		Quantity:   1,
	})
	return cart.clone(), nil
}

// ChangeQuantity adjusts a line by delta. The new quantity is clamped at
// zero, a zero quantity drops the line, and exceeding the line's stock
// ceiling is rejected leaving the cart unchanged.
func (s *service) ChangeQuantity(_ context.Context, cashierID, menuItemID string, delta int) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(cashierID)
	line := cart.find(menuItemID)
	if line == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item is not in the cart").
			WithDetails(map[string]string{"menu_item_id": menuItemID})
	}

	newQty := line.Quantity + delta
	if newQty < 0 {
		newQty = 0
	}
	if newQty > line.Stock {
		return nil, pkgerrors.New(pkgerrors.CodeStockExceeded, "requested quantity exceeds available stock").
			WithDetails(map[string]any{"menu_item_id": menuItemID, "stock": line.Stock})
	}

	if newQty == 0 {
		cart.remove(menuItemID)
	} else {
		line.Quantity = newQty
	}
	return cart.clone(), nil
}

// Get returns a snapshot of the cashier's cart.
func (s *service) Get(cashierID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(cashierID).clone()
}

// Clear empties the cashier's cart.
func (s *service) Clear(cashierID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cashierID)
}

func (s *service) cartLocked(cashierID string) *Cart {
	cart, ok := s.carts[cashierID]
	if !ok {
		cart = &Cart{}
		s.carts[cashierID] = cart
	}
	return cart
}
