package controllers

import (
	"net/http"

	"github.com/adiwijaya/warungpos-backend/api/responses"
	"github.com/adiwijaya/warungpos-backend/api/validators"
	authsvc "github.com/adiwijaya/warungpos-backend/internal/auth"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
}

// AuthLogin signs a cashier in by username and returns the session token.
func AuthLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), payload.Username)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}
