// Package config handles loading and validation of application configuration
// from environment variables. Supports .env files via godotenv.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-secret-change-in-production"

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        int
	Environment string // "development" | "staging" | "production"

	// Store backend: "file" | "memory" | "redis" | "postgres"
	StoreDriver string
	DataDir     string
	DatabaseURL string
	DBMaxConns  int
	DBTimeout   time.Duration
	RedisURL    string
	RedisPrefix string

	// Security
	JWTSecret      string
	TokenTTL       time.Duration
	OfficerKey     string
	OfficerKeyHash string
	AllowedOrigins []string
	RateLimitRPM   int

	// Case engine behaviour
	Timezone             string
	StatusToggleMode     string // "binary" | "cycle"
	NoticeDefaultHearing string // "last" | "next"
	DispatchWebhookURL   string
	DispatchResetAfter   time.Duration
	SeedDemo             bool

	// Notice letterhead
	OfficeGovernment string
	OfficeDepartment string
	OfficeName       string
	OfficeDistrict   string
	OfficeVenue      string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		Environment: getEnv("ENVIRONMENT", "development"),

		StoreDriver: getEnv("STORE_DRIVER", "file"),
		DataDir:     getEnv("DATA_DIR", "data"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 8),
		DBTimeout:   getEnvDuration("DB_STATEMENT_TIMEOUT", 5*time.Second),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisPrefix: getEnv("REDIS_PREFIX", "labour:"),

		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 12*time.Hour),
		OfficerKey:     getEnv("OFFICER_KEY", ""),
		OfficerKeyHash: getEnv("OFFICER_KEY_HASH", ""),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),
		RateLimitRPM:   getEnvInt("RATE_LIMIT_RPM", 60),

		Timezone:             getEnv("OFFICE_TIMEZONE", "Asia/Kolkata"),
		StatusToggleMode:     getEnv("STATUS_TOGGLE_MODE", "binary"),
		NoticeDefaultHearing: getEnv("NOTICE_DEFAULT_HEARING", "last"),
		DispatchWebhookURL:   getEnv("DISPATCH_WEBHOOK_URL", ""),
		DispatchResetAfter:   getEnvDuration("DISPATCH_RESET_AFTER", 5*time.Second),
		SeedDemo:             getEnvBool("SEED_DEMO", false),

		OfficeGovernment: getEnv("OFFICE_GOVERNMENT", "Government of Telangana"),
		OfficeDepartment: getEnv("OFFICE_DEPARTMENT", "Labour Department"),
		OfficeName:       getEnv("OFFICE_NAME", "Office of the Assistant Commissioner of Labour"),
		OfficeDistrict:   getEnv("OFFICE_DISTRICT", "Rangareddy District"),
		OfficeVenue:      getEnv("OFFICE_VENUE", "Chambers of the Asst. Commissioner of Labour, Rangareddy."),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and production requirements.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "file", "memory", "redis", "postgres":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.StatusToggleMode {
	case "binary", "cycle":
	default:
		return fmt.Errorf("unknown STATUS_TOGGLE_MODE %q", c.StatusToggleMode)
	}
	switch c.NoticeDefaultHearing {
	case "last", "next":
	default:
		return fmt.Errorf("unknown NOTICE_DEFAULT_HEARING %q", c.NoticeDefaultHearing)
	}
	if c.StoreDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the postgres store")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid OFFICE_TIMEZONE: %w", err)
	}

	// Validate required fields in production
	if c.Environment == "production" {
		if c.JWTSecret == devJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.OfficerKey == "" && c.OfficerKeyHash == "" {
			return fmt.Errorf("OFFICER_KEY or OFFICER_KEY_HASH must be set in production")
		}
	}
	return nil
}

// Location returns the office time zone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
