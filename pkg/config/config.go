package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	Store   StoreConfig
	Metrics MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	if _, err := cfg.Store.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WARUNGPOS_APP_ENV" default:"dev"`
	Port         string `envconfig:"WARUNGPOS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"WARUNGPOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WARUNGPOS_LOG_WARN_STACK" default:"false"`

	// CORSOrigins adds terminal origins beyond the local dev defaults,
	// comma separated.
	CORSOrigins []string `envconfig:"WARUNGPOS_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"WARUNGPOS_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"WARUNGPOS_DB_DSN" default:"warungpos.db"`

	AutoMigrate bool `envconfig:"WARUNGPOS_AUTO_MIGRATE" default:"true"`
	Seed        bool `envconfig:"WARUNGPOS_SEED" default:"true"`

	MaxOpenConns    int           `envconfig:"WARUNGPOS_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"WARUNGPOS_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"WARUNGPOS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WARUNGPOS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q (expected %s or %s)", db.Driver, DBDriverSQLite, DBDriverPostgres)
	}
	if db.DSN == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	return nil
}

type JWTConfig struct {
	Secret            string `envconfig:"WARUNGPOS_JWT_SECRET" default:"warungpos-local-secret"`
	Issuer            string `envconfig:"WARUNGPOS_JWT_ISSUER" default:"warungpos"`
	ExpirationMinutes int    `envconfig:"WARUNGPOS_JWT_EXPIRATION_MINUTES" default:"720"`
}

// StoreConfig carries restaurant-level settings.
type StoreConfig struct {
	// Timezone fixes the calendar used by dashboard and report date
	// bucketing, independent of the host timezone.
	Timezone    string `envconfig:"WARUNGPOS_TIMEZONE" default:"Asia/Jakarta"`
	Name        string `envconfig:"WARUNGPOS_STORE_NAME" default:"Warung Makan Bahari"`
	RevenueDays int    `envconfig:"WARUNGPOS_REVENUE_SERIES_DAYS" default:"7"`
}

// Location resolves the configured timezone.
func (s StoreConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

type MetricsConfig struct {
	Enabled bool `envconfig:"WARUNGPOS_METRICS_ENABLED" default:"true"`
}
