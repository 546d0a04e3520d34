package config

const (
	// EnvPrefix is the envconfig prefix shared by every setting.
	EnvPrefix = "WARUNGPOS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// Environment variable names used directly in tests and error messages.
const (
	EnvAppEnv     = "WARUNGPOS_APP_ENV"
	EnvPort       = "WARUNGPOS_APP_PORT"
	EnvDBDriver   = "WARUNGPOS_DB_DRIVER"
	EnvDBDSN      = "WARUNGPOS_DB_DSN"
	EnvJWTSecret  = "WARUNGPOS_JWT_SECRET"
	EnvJWTIssuer  = "WARUNGPOS_JWT_ISSUER"
	EnvJWTExpMins = "WARUNGPOS_JWT_EXPIRATION_MINUTES"
	EnvTimezone   = "WARUNGPOS_TIMEZONE"
)
