// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DB          DBConfig
	Port        string
	GinMode     string
	CORSOrigins []string
	Log         LogConfig
	Summary     SummaryConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the postgres connection URL.
func (c DBConfig) DSN() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Name + "?sslmode=" + c.SSLMode
}

type LogConfig struct {
	Level string
	File  string
}

type SummaryConfig struct {
	CacheTTL   time.Duration
	MaxRecords int
	RateRPM    int
}

var defaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"}

// Load builds the configuration from environment variables. Call godotenv first to
// pick up configs/.env.
func Load() (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Port:        getEnv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		CORSOrigins: defaultCORSOrigins,
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
		Summary: SummaryConfig{
			CacheTTL:   10 * time.Minute,
			MaxRecords: 100000,
			RateRPM:    600,
		},
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	if v := os.Getenv("SUMMARY_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SUMMARY_CACHE_TTL %q: %w", v, err)
		}
		cfg.Summary.CacheTTL = ttl
	}

	if v := os.Getenv("SUMMARY_MAX_RECORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SUMMARY_MAX_RECORDS %q", v)
		}
		cfg.Summary.MaxRecords = n
	}

	if v := os.Getenv("SUMMARY_RATE_RPM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SUMMARY_RATE_RPM %q: %w", v, err)
		}
		cfg.Summary.RateRPM = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
