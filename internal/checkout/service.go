package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adiwijaya/warungpos-backend/internal/cart"
	"github.com/adiwijaya/warungpos-backend/internal/catalog"
	"github.com/adiwijaya/warungpos-backend/internal/transactions"
	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
	"github.com/adiwijaya/warungpos-backend/pkg/metrics"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartStore interface {
	Get(cashierID string) *cart.Cart
	Clear(cashierID string)
}

// Cashier identifies who is committing the sale.
type Cashier struct {
	ID   string
	Name string
}

// Input is the payload for committing the cashier's cart.
type Input struct {
	Discount      int    `json:"discount"`
	PaymentMethod string `json:"payment_method"`
}

// Service turns a cart into a committed, immutable sale.
type Service interface {
	Process(ctx context.Context, cashier Cashier, input Input) (*models.Transaction, error)
}

type service struct {
	carts    cartStore
	catalog  *catalog.Repository
	ledger   *transactions.Repository
	tx       txRunner
	checkout *metrics.CheckoutMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds the checkout processor backed by the provided stack.
func NewService(carts cartStore, catalogRepo *catalog.Repository, ledger *transactions.Repository, tx txRunner, checkout *metrics.CheckoutMetrics, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if ledger == nil {
		return nil, fmt.Errorf("transactions repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		carts:    carts,
		catalog:  catalogRepo,
		ledger:   ledger,
		tx:       tx,
		checkout: checkout,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// Process validates the cart and payment, decrements stock for every line
// inside one database transaction, and appends the sale to the ledger. Any
// line failing the stock guard rolls the whole sale back and keeps the cart
// intact for correction.
func (s *service) Process(ctx context.Context, cashier Cashier, input Input) (*models.Transaction, error) {
	trx, err := s.process(ctx, cashier, input)
	if err != nil {
		s.checkout.IncFailure(string(pkgerrors.As(err).Code()))
		return nil, err
	}
	return trx, nil
}

func (s *service) process(ctx context.Context, cashier Cashier, input Input) (*models.Transaction, error) {
	if cashier.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cashier is required")
	}

	method, err := enums.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method").
			WithDetails(map[string]string{"payment_method": input.PaymentMethod})
	}

	current := s.carts.Get(cashier.ID)
	if current.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}

	subtotal := current.Subtotal()
	if input.Discount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount must not be negative")
	}
	if input.Discount > subtotal {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount exceeds subtotal").
			WithDetails(map[string]int{"discount": input.Discount, "subtotal": subtotal})
	}

	now := s.now()
	trx := &models.Transaction{
		ID:            uuid.NewString(),
		OrderNumber:   orderNumber(now),
		Timestamp:     now,
		CashierID:     cashier.ID,
		CashierName:   cashier.Name,
		Subtotal:      subtotal,
		Discount:      input.Discount,
		Total:         subtotal - input.Discount,
		PaymentMethod: method,
	}

	quantity := 0
	for _, line := range current.Lines {
		trx.Lines = append(trx.Lines, models.TransactionLine{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
		quantity += line.Quantity
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		catalogTx := s.catalog.WithTx(tx)
		for _, line := range current.Lines {
			if err := catalogTx.DecrementStock(ctx, line.MenuItemID, line.Quantity); err != nil {
				return err
			}
		}
		_, err := s.ledger.WithTx(tx).Create(ctx, trx)
		return err
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "commit sale")
	}

	s.carts.Clear(cashier.ID)
	s.checkout.ObserveSale(string(method), trx.Total, quantity)

	ctx = s.logg.WithFields(ctx, map[string]any{
		"order_number":   trx.OrderNumber,
		"payment_method": string(method),
		"total":          trx.Total,
	})
	s.logg.Info(ctx, "sale committed")

	return trx, nil
}

// orderNumber derives the human-facing receipt number from the commit
// time's unix milliseconds, keeping the last six digits.
func orderNumber(ts time.Time) string {
	millis := strconv.FormatInt(ts.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return "TRX-" + millis
}
