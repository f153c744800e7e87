package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/mindwell/assessment-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// UseMemoryRepository swaps the Postgres repository for the in-memory
	// one; used for local runs without a database.
	UseMemoryRepository bool `env:"USE_MEMORY_REPOSITORY" envDefault:"false"`

	// Session configuration
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// Counselor alert webhook configuration
	AlertCfg AlertConnectorConfig `envPrefix:"ALERT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Telegram bot configuration (only read by the telegram-bot binary)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// SessionConfig holds the live-session tuning knobs.
type SessionConfig struct {
	// IntegratedDurationSeconds is the shared countdown for the full
	// three-instrument session.
	IntegratedDurationSeconds int `env:"INTEGRATED_DURATION_SECONDS" envDefault:"900"`
	// SingleDurationSeconds is the countdown for one-instrument sessions.
	SingleDurationSeconds int `env:"SINGLE_DURATION_SECONDS" envDefault:"300"`
	// TTL is how long an inactive live session is kept before eviction.
	TTL             time.Duration `env:"TTL" envDefault:"2h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`

	// PersistRetry bounds the retry of the repository hand-off.
	PersistRetry pkgRetry.RetryConfig `envPrefix:"PERSIST_RETRY_"`
}

// AlertConnectorConfig configures the counselor alert webhook.
type AlertConnectorConfig struct {
	HTTPClientConfig
	Enabled       bool                 `env:"ENABLED" envDefault:"false"`
	AlertEndpoint string               `env:"ENDPOINT"`
	Retry         pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken           string `env:"BOT_TOKEN"`
	UpdateTimeout      int    `env:"UPDATE_TIMEOUT" envDefault:"30"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	RateLimitBurst     int    `env:"RATE_LIMIT_BURST" envDefault:"5"`
	ShutdownTimeout    int    `env:"SHUTDOWN_TIMEOUT" envDefault:"30"` // seconds
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"10s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"5s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.SessionCfg.IntegratedDurationSeconds < 60 {
		errors = append(errors, fmt.Sprintf("SESSION_INTEGRATED_DURATION_SECONDS must be at least 60, got %d", cfg.SessionCfg.IntegratedDurationSeconds))
	}

	if cfg.SessionCfg.SingleDurationSeconds < 60 {
		errors = append(errors, fmt.Sprintf("SESSION_SINGLE_DURATION_SECONDS must be at least 60, got %d", cfg.SessionCfg.SingleDurationSeconds))
	}

	if !cfg.UseMemoryRepository && cfg.DatabaseURL == "" {
		errors = append(errors, "DATABASE_URL must be set unless USE_MEMORY_REPOSITORY=true")
	}

	if cfg.AlertCfg.Enabled && cfg.AlertCfg.Url == "" {
		errors = append(errors, "ALERT_SERVICE_URL must be set when ALERT_ENABLED=true")
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.TelegramCfg.RateLimitPerMinute < 1 || cfg.TelegramCfg.RateLimitPerMinute > 60 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_RATE_LIMIT_PER_MINUTE must be between 1 and 60, got %d", cfg.TelegramCfg.RateLimitPerMinute))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", errors[0])
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
