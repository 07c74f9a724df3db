package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// It is populated once from environment variables and never mutated.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Port        string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// RedisConfig points at the rate-limit counter store. An empty Host keeps
// the counters in process.
type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// AdminConfig is the single administrative identity, compared in plaintext
type AdminConfig struct {
	Username string
	Password string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

var (
	ErrMissingJWTSecret   = errors.New("JWT_SECRET must be set")
	ErrMissingAdminUser   = errors.New("ADMIN_USERNAME must be set")
	ErrMissingAdminPass   = errors.New("ADMIN_PASSWORD must be set")
	ErrInvalidRateLimit   = errors.New("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW must be positive")
	ErrInvalidEnvDuration = errors.New("invalid duration")
)

// Load reads config from environment variables
func Load() (*Config, error) {
	jwtExpiry, err := getEnvDuration("JWT_EXPIRY", time.Hour)
	if err != nil {
		return nil, err
	}
	window, err := getEnvDuration("RATE_LIMIT_WINDOW", 2*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Blog Post API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "myblogposts_db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Expiry: jwtExpiry,
		},
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvInt("RATE_LIMIT_MAX", 100),
			Window: window,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate fails fast on settings the service cannot run without
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	if c.Admin.Username == "" {
		return ErrMissingAdminUser
	}
	if c.Admin.Password == "" {
		return ErrMissingAdminPass
	}
	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %v", ErrInvalidEnvDuration, key, err)
	}
	return value, nil
}
