package controllers

import (
	"net/http"

	"github.com/adiwijaya/warungpos-backend/api/responses"
	"github.com/adiwijaya/warungpos-backend/pkg/config"
	"github.com/adiwijaya/warungpos-backend/pkg/db"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WarungPOS-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WarungPOS-Env", cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
