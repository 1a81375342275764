package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full runtime configuration, read from environment variables
// (a .env file is loaded by main before this runs).
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret   string
	JWTLifetime time.Duration

	CORSOrigin   string
	CookieSecure bool

	// Email of the shared read-only demo account; empty disables the guard.
	DemoUserEmail string

	LogLevel  string
	LogFormat string
}

// Load builds a Config from the environment. JWT_SECRET and DATABASE_URL
// have no usable defaults and are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "5000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTLifetime:   getenvDuration("JWT_LIFETIME", 24*time.Hour),
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:3000"),
		CookieSecure:  getenvBool("COOKIE_SECURE", false),
		DemoUserEmail: os.Getenv("DEMO_USER_EMAIL"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "console"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
