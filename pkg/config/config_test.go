package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" || cfg.Cache.TTL != 24*time.Hour {
		t.Fatalf("cache defaults wrong: %+v", cfg.Cache)
	}
	if cfg.Market.Source != "simulated" || cfg.Market.DefaultDays != 365 {
		t.Fatalf("market defaults wrong: %+v", cfg.Market)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("logging level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	t.Setenv("PORT", "9090")
	t.Setenv("MARKET_SOURCE", "feed")
	t.Setenv("FEED_URL", "https://stooq.com/q/d/l/")
	t.Setenv("SYMBOLS", "PKN,KGH")
	t.Setenv("DEFAULT_DAYS", "180")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Market.Source != "feed" || cfg.Market.FeedURL == "" {
		t.Fatalf("market override wrong: %+v", cfg.Market)
	}
	if len(cfg.Market.Symbols) != 2 {
		t.Fatalf("symbols = %v", cfg.Market.Symbols)
	}
	if cfg.Market.DefaultDays != 180 {
		t.Fatalf("default days = %d, want 180", cfg.Market.DefaultDays)
	}
}

func TestLoadWithEnvIgnoresBadNumbers(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	t.Setenv("PORT", "not-a-port")
	t.Setenv("DEFAULT_DAYS", "soon")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Market.DefaultDays != 365 {
		t.Fatalf("default days = %d, want default 365", cfg.Market.DefaultDays)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []string{
		"",                                              // missing environment
		"environment: test\nmarket:\n  source: oracle\n", // unknown source
		"environment: test\nmarket:\n  source: feed\n",   // feed without url
		"environment: test\ncache:\n  type: disk\n",      // unknown cache type
	}
	for _, body := range cases {
		path := writeConfig(t, body)
		if _, err := Load(path); err == nil {
			t.Fatalf("config %q passed validation", body)
		}
	}
}
