package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/parokitomang/content-service/internal/auth"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Admin        AdminConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	CacheTTLSec int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token parameters. JWTSecret has no default: a
// process without an explicit secret must refuse to start.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// AdminConfig is the single bootstrap credential. PasswordHash is
// always a bcrypt hash: when only a plaintext ADMIN_PASSWORD is
// supplied it is hashed during Load and the plaintext discarded.
type AdminConfig struct {
	Email        string
	PasswordHash string
	HashedAtBoot bool
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults
// where possible. A missing signing secret or admin credential is fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}

	bcryptCost := getEnvAsInt("AUTH_BCRYPT_COST", 12)

	admin, err := loadAdmin(bcryptCost)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "content-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			DB:          redisDB,
			CacheTTLSec: getEnvAsInt("REDIS_CACHE_TTL_SECONDS", 60),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             secret,
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60*24),
			BcryptCost:            bcryptCost,
		},
		Admin: admin,
		Notification: NotificationConfig{
			EmailFrom:  os.Getenv("NOTIFY_EMAIL_FROM"),
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		},
	}

	return cfg, nil
}

// loadAdmin resolves the bootstrap account. ADMIN_PASSWORD_HASH wins;
// a plaintext ADMIN_PASSWORD is accepted for bootstrap convenience but
// is hashed immediately so only the hash is ever held.
func loadAdmin(bcryptCost int) (AdminConfig, error) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return AdminConfig{}, errors.New("ADMIN_EMAIL is required")
	}

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return AdminConfig{Email: email, PasswordHash: hash}, nil
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		return AdminConfig{}, errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
	}
	hash, err := auth.HashPassword(plain, bcryptCost)
	if err != nil {
		return AdminConfig{}, fmt.Errorf("hash bootstrap password: %w", err)
	}
	return AdminConfig{Email: email, PasswordHash: hash, HashedAtBoot: true}, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns how long public list responses may be cached.
func (r RedisConfig) CacheTTL() time.Duration {
	if r.CacheTTLSec <= 0 {
		return 0
	}
	return time.Duration(r.CacheTTLSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
