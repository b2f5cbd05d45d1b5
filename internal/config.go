package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all server configuration, sourced from the environment with
// optional .env overrides for development.
type Config struct {
	Env      string
	LogLevel string
	Port     uint16

	// MetricsNamespace prefixes all Prometheus metric names.
	MetricsNamespace string

	// CORSOrigins lists origins allowed to call the API with credentials.
	CORSOrigins []string

	Session   SessionConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
}

// SessionConfig controls the in-memory session store. Sessions are
// deliberately ephemeral; a restart clears every cart.
type SessionConfig struct {
	// Capacity bounds how many sessions stay resident before LRU eviction.
	Capacity int

	// TTL is how long an idle session survives. The session cookie gets the
	// same lifetime.
	TTL time.Duration

	// SecureCookies marks the session cookie Secure. On in prod.
	SecureCookies bool
}

// CatalogConfig points at optional JSON files overriding the built-in
// catalog and promo registry.
type CatalogConfig struct {
	ItemsFile string
	PromoFile string
}

// RateLimitConfig tunes the default per-client limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// NewConfig loads configuration. A .env file is searched for in the working
// directory and up to two parents, then real environment variables win.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Debug(".env file not found, using environment variables and defaults")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", 3000)
	v.SetDefault("METRICS_NAMESPACE", "gameshop")
	v.SetDefault("CORS_ORIGINS", []string{"http://localhost:5173"})
	v.SetDefault("SESSION_CAPACITY", 10000)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SECURE_COOKIES", false)
	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("PROMO_FILE", "")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	cfg := &Config{
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		Port:             v.GetUint16("PORT"),
		MetricsNamespace: v.GetString("METRICS_NAMESPACE"),
		CORSOrigins:      v.GetStringSlice("CORS_ORIGINS"),
		Session: SessionConfig{
			Capacity:      v.GetInt("SESSION_CAPACITY"),
			TTL:           v.GetDuration("SESSION_TTL"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Catalog: CatalogConfig{
			ItemsFile: v.GetString("CATALOG_FILE"),
			PromoFile: v.GetString("PROMO_FILE"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			BurstSize:         v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Session.Capacity < 1 {
		return nil, fmt.Errorf("SESSION_CAPACITY must be positive, got %d", cfg.Session.Capacity)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}
	if cfg.Env == "prod" && !cfg.Session.SecureCookies {
		slog.Default().Warn("SECURE_COOKIES is off in prod; session cookies will be sent over plain HTTP")
	}

	return cfg, nil
}
