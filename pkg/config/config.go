package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Stock         StockConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"SAIL_APP_ENV" required:"true"`
	Port         string   `envconfig:"SAIL_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"SAIL_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"SAIL_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"SAIL_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Driver selects the storage backend explicitly: "postgres" for the
	// pooled deployment, "sqlite" for the embedded standalone one.
	Driver string `envconfig:"SAIL_DB_DRIVER" default:"postgres"`
	DSN    string `envconfig:"SAIL_DB_DSN"`

	// SQLitePath is the database file used when Driver is "sqlite".
	SQLitePath string `envconfig:"SAIL_DB_SQLITE_PATH" default:"sail.db"`

	LegacyHost     string `envconfig:"SAIL_DB_HOST"`
	LegacyPort     int    `envconfig:"SAIL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SAIL_DB_USER"`
	LegacyPassword string `envconfig:"SAIL_DB_PASSWORD"`
	LegacyName     string `envconfig:"SAIL_DB_NAME"`
	LegacySSLMode  string `envconfig:"SAIL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SAIL_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"SAIL_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"SAIL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SAIL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the embedded file-backed backend is selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"SAIL_REDIS_URL"`
	Address      string        `envconfig:"SAIL_REDIS_ADDR"`
	Password     string        `envconfig:"SAIL_REDIS_PASSWORD"`
	DB           int           `envconfig:"SAIL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SAIL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SAIL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SAIL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SAIL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SAIL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. Auth rate
// limiting is skipped when it was not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	// Secret is only needed by deployments that mount authentication; the
	// standalone build boots without it. Validate enforces presence where
	// tokens are actually minted.
	Secret            string `envconfig:"SAIL_JWT_SECRET"`
	Issuer            string `envconfig:"SAIL_JWT_ISSUER" default:"sail-backend"`
	ExpirationMinutes int    `envconfig:"SAIL_JWT_EXPIRATION_MINUTES" default:"1440"`
	CookieName        string `envconfig:"SAIL_JWT_COOKIE_NAME" default:"auth_token"`
	CookieSecure      bool   `envconfig:"SAIL_JWT_COOKIE_SECURE" default:"false"`
}

// Validate checks the fields an authenticated deployment depends on.
func (j JWTConfig) Validate() error {
	if j.Secret == "" {
		return fmt.Errorf("%s is required", EnvJWTSecret)
	}
	if j.ExpirationMinutes <= 0 {
		return fmt.Errorf("jwt expiration minutes must be positive")
	}
	return nil
}

// TokenTTL returns the access token lifetime. The default matches the one-day
// cookie expiry of the public API.
func (j JWTConfig) TokenTTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SAIL_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SAIL_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SAIL_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SAIL_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SAIL_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"SAIL_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"SAIL_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"SAIL_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"SAIL_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"SAIL_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"SAIL_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type StockConfig struct {
	// DataPath points at the bundled stock dataset seeded on first boot.
	DataPath string `envconfig:"SAIL_STOCK_DATA_PATH" default:"data/stock-data.csv"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SAIL_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.IsSQLite() {
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
