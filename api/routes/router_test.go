package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authsvc "github.com/adiwijaya/warungpos-backend/internal/auth"
	cartsvc "github.com/adiwijaya/warungpos-backend/internal/cart"
	"github.com/adiwijaya/warungpos-backend/internal/catalog"
	checkoutsvc "github.com/adiwijaya/warungpos-backend/internal/checkout"
	"github.com/adiwijaya/warungpos-backend/internal/reporting"
	"github.com/adiwijaya/warungpos-backend/internal/transactions"
	"github.com/adiwijaya/warungpos-backend/pkg/config"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func setupRouterTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS menu_items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category_id TEXT NOT NULL,
  price INTEGER NOT NULL,
  stock INTEGER NOT NULL CHECK (stock >= 0),
  status TEXT NOT NULL,
  image TEXT,
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  role TEXT NOT NULL,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS transactions (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  order_number TEXT NOT NULL,
  timestamp DATETIME NOT NULL,
  cashier_id TEXT NOT NULL,
  cashier_name TEXT NOT NULL,
  subtotal INTEGER NOT NULL,
  discount INTEGER NOT NULL DEFAULT 0,
  total INTEGER NOT NULL,
  payment_method TEXT NOT NULL,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS transaction_lines (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  transaction_id TEXT NOT NULL,
  menu_item_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price INTEGER NOT NULL,
  quantity INTEGER NOT NULL
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	require.NoError(t, catalog.Seed(context.Background(), db))
	return db
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := setupRouterTestDB(t)
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	cfg := &config.Config{
		App: config.AppConfig{Env: "dev", Port: "0"},
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "warungpos", ExpirationMinutes: 60},
		Store: config.StoreConfig{
			Timezone:    "UTC",
			Name:        "Warung Makan Bahari",
			RevenueDays: 7,
		},
	}

	catalogRepo := catalog.NewRepository(db)
	ledgerRepo := transactions.NewRepository(db)

	catalogService, err := catalog.NewService(catalogRepo)
	require.NoError(t, err)

	cartService, err := cartsvc.NewService(catalogService)
	require.NoError(t, err)

	checkoutService, err := checkoutsvc.NewService(cartService, catalogRepo, ledgerRepo, gormTxRunner{db: db}, nil, logg)
	require.NoError(t, err)

	reportingService, err := reporting.NewService(ledgerRepo, catalogRepo, time.UTC, 7)
	require.NoError(t, err)

	authService, err := authsvc.NewService(authsvc.NewRepository(db), cfg.JWT)
	require.NoError(t, err)

	return NewRouter(cfg, logg, stubPinger{}, authService, catalogService, cartService, checkoutService, reportingService, nil)
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, handler http.Handler, username string) string {
	t.Helper()

	w := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": username})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Data.Token)
	return envelope.Data.Token
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestRouter(t)

	assert.Equal(t, http.StatusOK, doJSON(t, handler, http.MethodGet, "/health/live", "", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, handler, http.MethodGet, "/health/ready", "", nil).Code)
}

func TestLoginFlow(t *testing.T) {
	handler := newTestRouter(t)

	w := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "mallory"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	token := login(t, handler, "kasir1")
	assert.NotEmpty(t, token)
}

func TestMenusRequireAuth(t *testing.T) {
	handler := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, handler, http.MethodGet, "/api/v1/menus", "", nil).Code)

	token := login(t, handler, "kasir1")
	w := doJSON(t, handler, http.MethodGet, "/api/v1/menus", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []struct {
			ID string `json:"ID"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 6, "seeded catalog")
}

func TestAdminGuard(t *testing.T) {
	handler := newTestRouter(t)

	cashierToken := login(t, handler, "kasir1")
	adminToken := login(t, handler, "admin")

	w := doJSON(t, handler, http.MethodGet, "/api/v1/dashboard", cashierToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/api/v1/dashboard", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodDelete, "/api/v1/menus/m6", cashierToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, handler, http.MethodDelete, "/api/v1/menus/m6", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartCheckoutFlow(t *testing.T) {
	handler := newTestRouter(t)
	token := login(t, handler, "kasir1")

	// Checkout with an empty cart is rejected.
	w := doJSON(t, handler, http.MethodPost, "/api/v1/checkout", token, map[string]any{"discount": 0, "payment_method": "cash"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Two portions of m1, one of m3.
	for _, id := range []string{"m1", "m1", "m3"} {
		w = doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token, map[string]string{"menu_item_id": id})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = doJSON(t, handler, http.MethodPost, "/api/v1/checkout", token, map[string]any{"discount": 5000, "payment_method": "qris"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var envelope struct {
		Data struct {
			OrderNumber string `json:"OrderNumber"`
			Total       int    `json:"Total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, 50000, envelope.Data.Total)
	assert.Contains(t, envelope.Data.OrderNumber, "TRX-")

	// Stock was decremented and the cart is empty again.
	w = doJSON(t, handler, http.MethodGet, "/api/v1/menus/m1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var menuEnvelope struct {
		Data struct {
			Stock int `json:"Stock"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&menuEnvelope))
	assert.Equal(t, 48, menuEnvelope.Data.Stock)

	w = doJSON(t, handler, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cartEnvelope struct {
		Data struct {
			Lines    []any `json:"lines"`
			Subtotal int   `json:"subtotal"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cartEnvelope))
	assert.Empty(t, cartEnvelope.Data.Lines)

	// The sale shows up in the cashier's history.
	w = doJSON(t, handler, http.MethodGet, "/api/v1/transactions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var historyEnvelope struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&historyEnvelope))
	assert.Len(t, historyEnvelope.Data, 1)
}
