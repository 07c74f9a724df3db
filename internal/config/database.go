package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"blogpost-backend/internal/infrastructure/database"
)

func requireEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, raw)
	}
	return value, nil
}

// LoadDatabaseConfig combines the store address from Config with the pool
// tuning parameters read from the environment. Unlike the address settings,
// a malformed tuning value is an error rather than a silent default.
func LoadDatabaseConfig(base DatabaseConfig) (*database.DBConfig, error) {
	cfg := &database.DBConfig{
		Host:     base.Host,
		Port:     base.Port,
		Username: base.User,
		Password: base.Password,
		DBName:   base.Database,
	}

	ints := []struct {
		key  string
		def  int
		dest func(int)
	}{
		{"DB_MAX_CONNECTIONS", 10, func(v int) { cfg.MaxConns = int32(v) }},
		{"DB_MIN_CONNECTIONS", 1, func(v int) { cfg.MinConns = int32(v) }},
		{"DB_MAX_RETRIES", 5, func(v int) { cfg.MaxRetries = v }},
	}
	for _, f := range ints {
		v, err := requireEnvInt(f.key, f.def)
		if err != nil {
			return nil, err
		}
		f.dest(v)
	}

	durations := []struct {
		key  string
		def  time.Duration
		dest *time.Duration
	}{
		{"DB_MAX_CONN_LIFETIME", 5 * time.Minute, &cfg.MaxConnLifetime},
		{"DB_MAX_CONN_IDLE_TIME", time.Minute, &cfg.MaxConnIdleTime},
		{"DB_HEALTH_CHECK_PERIOD", time.Minute, &cfg.HealthCheckPeriod},
		{"DB_RETRY_DELAY", time.Second, &cfg.RetryDelay},
		{"DB_CONNECT_TIMEOUT", 10 * time.Second, &cfg.ConnectTimeout},
	}
	for _, f := range durations {
		v, err := getEnvDuration(f.key, f.def)
		if err != nil {
			return nil, err
		}
		*f.dest = v
	}

	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}

	return cfg, nil
}
