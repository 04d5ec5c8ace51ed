package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// SAIL_-prefixed names so the prefix is only a namespace guard.
const EnvPrefix = "sail"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv    = "SAIL_APP_ENV"
	EnvPort      = "SAIL_APP_PORT"
	EnvDBDSN     = "SAIL_DB_DSN"
	EnvDBDriver  = "SAIL_DB_DRIVER"
	EnvDBHost    = "SAIL_DB_HOST"
	EnvDBUser    = "SAIL_DB_USER"
	EnvDBName    = "SAIL_DB_NAME"
	EnvRedisURL  = "SAIL_REDIS_URL"
	EnvJWTSecret = "SAIL_JWT_SECRET"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
