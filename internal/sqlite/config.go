// File path: internal/sqlite/config.go
package sqlite

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the connection pool settings for the session catalog.
// Values come from the environment; zero values fall back to the
// defaults in applyDefaults.
type Config struct {
	Path string

	MaxOpenConns int
	MaxIdleConns int

	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	BusyTimeout     time.Duration
}

// LoadConfig reads the SQLITE_* environment knobs and fills in defaults.
func LoadConfig() (Config, error) {
	cfg := Config{Path: strings.TrimSpace(os.Getenv("SQLITE_PATH"))}
	var err error
	if cfg.MaxOpenConns, err = envInt("SQLITE_MAX_OPEN_CONNS"); err != nil {
		return Config{}, err
	}
	if cfg.MaxIdleConns, err = envInt("SQLITE_MAX_IDLE_CONNS"); err != nil {
		return Config{}, err
	}
	if cfg.ConnMaxLifetime, err = envDuration("SQLITE_CONN_MAX_LIFETIME"); err != nil {
		return Config{}, err
	}
	if cfg.ConnMaxIdleTime, err = envDuration("SQLITE_CONN_MAX_IDLE_TIME"); err != nil {
		return Config{}, err
	}
	if cfg.BusyTimeout, err = envDuration("SQLITE_BUSY_TIMEOUT"); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 8
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = 15 * time.Minute
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = 5 * time.Minute
	}
	if c.BusyTimeout <= 0 {
		c.BusyTimeout = 5 * time.Second
	}
}

func envInt(name string) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}

func envDuration(name string) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}
