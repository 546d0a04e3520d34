package controllers

import (
	"net/http"

	"github.com/adiwijaya/warungpos-backend/api/middleware"
	"github.com/adiwijaya/warungpos-backend/api/responses"
	"github.com/adiwijaya/warungpos-backend/api/validators"
	cartsvc "github.com/adiwijaya/warungpos-backend/internal/cart"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
)

type cartAddRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
}

type cartQuantityRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Delta      int    `json:"delta" validate:"required"`
}

type cartResponse struct {
	Lines    []cartsvc.Line `json:"lines"`
	Subtotal int            `json:"subtotal"`
}

func newCartResponse(c *cartsvc.Cart) cartResponse {
	return cartResponse{Lines: c.Lines, Subtotal: c.Subtotal()}
}

// CartFetch returns the calling cashier's in-progress cart.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cashierID := middleware.UserIDFromContext(r.Context())
		responses.WriteSuccess(w, newCartResponse(svc.Get(cashierID)))
	}
}

// CartAdd puts one unit of a menu item into the cart.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cashierID := middleware.UserIDFromContext(r.Context())
		cart, err := svc.AddItem(r.Context(), cashierID, payload.MenuItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartChangeQuantity nudges a line by a signed delta; zero removes the line.
func CartChangeQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cashierID := middleware.UserIDFromContext(r.Context())
		cart, err := svc.ChangeQuantity(r.Context(), cashierID, payload.MenuItemID, payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartClear empties the cart, e.g. when a cashier abandons an order.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cashierID := middleware.UserIDFromContext(r.Context())
		svc.Clear(cashierID)
		responses.WriteSuccess(w, newCartResponse(svc.Get(cashierID)))
	}
}
