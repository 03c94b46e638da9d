package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings.
type Config struct {
	Port          string
	DatabasePath  string
	SessionSecret string
	AdminUserID   int64
	BcryptCost    int
	CookieSecure  bool
}

// Load reads configuration from the environment, loading a .env file first
// when one is present. It validates the session secret and bcrypt cost.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not an error: production sets env vars directly.
		slog.Info("no .env file found, reading from environment")
	}

	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: envOrDefault("DATABASE_PATH", "blog.db"),
		AdminUserID:  1,
		BcryptCost:   12,
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("ADMIN_USER_ID"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid ADMIN_USER_ID %q", v)
		}
		cfg.AdminUserID = parsed
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
