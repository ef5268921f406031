// File path: internal/sqlite/config_test.go
package sqlite

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{
		"SQLITE_PATH", "SQLITE_MAX_OPEN_CONNS", "SQLITE_MAX_IDLE_CONNS",
		"SQLITE_CONN_MAX_LIFETIME", "SQLITE_CONN_MAX_IDLE_TIME", "SQLITE_BUSY_TIMEOUT",
	} {
		t.Setenv(name, "")
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxOpenConns != 8 || cfg.MaxIdleConns != 8 {
		t.Fatalf("pool defaults: open %d idle %d", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.BusyTimeout != 5*time.Second {
		t.Fatalf("busy timeout default: %s", cfg.BusyTimeout)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SQLITE_PATH", "data/other.db")
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "2")
	t.Setenv("SQLITE_BUSY_TIMEOUT", "250ms")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Path != "data/other.db" || cfg.MaxOpenConns != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MaxIdleConns != 2 {
		t.Fatalf("idle conns should follow open conns, got %d", cfg.MaxIdleConns)
	}
	if cfg.BusyTimeout != 250*time.Millisecond {
		t.Fatalf("busy timeout: %s", cfg.BusyTimeout)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "many")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for non-numeric pool size")
	}
}
