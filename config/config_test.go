package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NAVER_LAND_BASE_URL", "")
	t.Setenv("PROBE_TIMEOUT_MS", "")
	t.Setenv("TOKEN_PROBE", "")
	t.Setenv("MAX_AUTH_RETRIES", "")

	cfg := Load()
	if cfg.BaseURL != "https://new.land.naver.com" {
		t.Errorf("BaseURL: got %q", cfg.BaseURL)
	}
	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("ProbeTimeout: got %v, want 5s", cfg.ProbeTimeout)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout: got %v, want 10s", cfg.FetchTimeout)
	}
	if !cfg.ProbeEnabled {
		t.Error("ProbeEnabled should default to true")
	}
	if cfg.MaxAuthRetries != 1 {
		t.Errorf("MaxAuthRetries: got %d, want 1", cfg.MaxAuthRetries)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NAVER_LAND_BASE_URL", "http://127.0.0.1:9999/")
	t.Setenv("TOKEN_PROBE", "off")
	t.Setenv("REQUEST_RPS", "0.5")
	t.Setenv("SETTLE_DELAY_MS", "not-a-number")

	cfg := Load()
	if cfg.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("BaseURL: got %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.ProbeEnabled {
		t.Error("ProbeEnabled should be false for TOKEN_PROBE=off")
	}
	if cfg.RequestRPS != 0.5 {
		t.Errorf("RequestRPS: got %v, want 0.5", cfg.RequestRPS)
	}
	if cfg.SettleDelay != 3*time.Second {
		t.Errorf("SettleDelay: got %v, want fallback 3s", cfg.SettleDelay)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5432", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "land", PostgresSSLMode: "disable",
	}
	want := "host=db port=5432 user=u password=p dbname=land sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
