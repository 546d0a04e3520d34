package controllers

import (
	"net/http"

	"github.com/adiwijaya/warungpos-backend/api/middleware"
	"github.com/adiwijaya/warungpos-backend/api/responses"
	"github.com/adiwijaya/warungpos-backend/api/validators"
	"github.com/adiwijaya/warungpos-backend/internal/reporting"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
)

// Dashboard serves today's headline numbers for the overview screen.
func Dashboard(svc reporting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reporting service unavailable"))
			return
		}

		stats, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}

// RevenueSeries serves the daily revenue chart; ?days overrides the window.
func RevenueSeries(svc reporting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reporting service unavailable"))
			return
		}

		days, err := validators.ParseQueryInt(r, "days", 0, 1, 90)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		points, err := svc.RevenueSeries(r.Context(), days)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, points)
	}
}

// ReportSummary aggregates sales for a date range. Admin only at the route
// level.
func ReportSummary(svc reporting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reporting service unavailable"))
			return
		}

		filter, err := historyFilterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Summary(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}

// History lists committed sales. Cashiers only ever see their own; admins
// see everything and may narrow with ?cashier=.
func History(svc reporting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reporting service unavailable"))
			return
		}

		filter, err := historyFilterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if middleware.RoleFromContext(r.Context()) != string(enums.UserRoleAdmin) {
			filter.CashierID = middleware.UserIDFromContext(r.Context())
		}

		rows, err := svc.History(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

func historyFilterFromQuery(r *http.Request) (reporting.HistoryFilter, error) {
	from, err := validators.ParseQueryDate(r, "from")
	if err != nil {
		return reporting.HistoryFilter{}, err
	}
	to, err := validators.ParseQueryDate(r, "to")
	if err != nil {
		return reporting.HistoryFilter{}, err
	}
	return reporting.HistoryFilter{
		From:      from,
		To:        to,
		CashierID: r.URL.Query().Get("cashier"),
	}, nil
}
