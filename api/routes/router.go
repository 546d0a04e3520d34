package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adiwijaya/warungpos-backend/api/controllers"
	"github.com/adiwijaya/warungpos-backend/api/middleware"
	authsvc "github.com/adiwijaya/warungpos-backend/internal/auth"
	cartsvc "github.com/adiwijaya/warungpos-backend/internal/cart"
	"github.com/adiwijaya/warungpos-backend/internal/catalog"
	checkoutsvc "github.com/adiwijaya/warungpos-backend/internal/checkout"
	"github.com/adiwijaya/warungpos-backend/internal/reporting"
	"github.com/adiwijaya/warungpos-backend/pkg/config"
	"github.com/adiwijaya/warungpos-backend/pkg/db"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	authService authsvc.Service,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	reportingService reporting.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if cfg.Metrics.Enabled && metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/menus", controllers.MenusList(catalogService, logg))
		r.Get("/menus/{menuId}", controllers.MenusGet(catalogService, logg))
		r.Get("/categories", controllers.CategoriesList(catalogService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAdd(cartService, logg))
			r.Patch("/items", controllers.CartChangeQuantity(cartService, logg))
		})

		r.Post("/checkout", controllers.CheckoutCommit(checkoutService, logg))
		r.Get("/transactions", controllers.History(reportingService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))

			r.Post("/menus", controllers.MenusCreate(catalogService, logg))
			r.Put("/menus/{menuId}", controllers.MenusUpdate(catalogService, logg))
			r.Delete("/menus/{menuId}", controllers.MenusDelete(catalogService, logg))

			r.Get("/dashboard", controllers.Dashboard(reportingService, logg))
			r.Get("/reports/revenue", controllers.RevenueSeries(reportingService, logg))
			r.Get("/reports/summary", controllers.ReportSummary(reportingService, logg))
		})
	})

	return r
}
