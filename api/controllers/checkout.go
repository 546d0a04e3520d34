package controllers

import (
	"net/http"

	"github.com/adiwijaya/warungpos-backend/api/middleware"
	"github.com/adiwijaya/warungpos-backend/api/responses"
	"github.com/adiwijaya/warungpos-backend/api/validators"
	checkoutsvc "github.com/adiwijaya/warungpos-backend/internal/checkout"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
)

type checkoutRequest struct {
	Discount      int    `json:"discount" validate:"gte=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash qris"`
}

// CheckoutCommit turns the calling cashier's cart into a committed sale.
func CheckoutCommit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cashier := checkoutsvc.Cashier{
			ID:   middleware.UserIDFromContext(r.Context()),
			Name: middleware.UserNameFromContext(r.Context()),
		}

		trx, err := svc.Process(r.Context(), cashier, checkoutsvc.Input{
			Discount:      payload.Discount,
			PaymentMethod: payload.PaymentMethod,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, trx)
	}
}
