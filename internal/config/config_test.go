package config

import (
	"testing"
	"time"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Fatal("cache should default to enabled")
	}
	if cfg.TTL != 30*time.Second {
		t.Fatalf("TTL = %v, want 30s", cfg.TTL)
	}
	if cfg.Prefix == "" {
		t.Fatal("prefix must have a default")
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Fatalf("MaxBodyBytes = %d, want 1048576", cfg.MaxBodyBytes)
	}
}

func TestLoadCacheConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CACHE_PREFIX", "other")
	cfg := LoadCacheConfig()
	if cfg.Enabled {
		t.Fatal("CACHE_ENABLED=false ignored")
	}
	if cfg.TTL != 2*time.Minute {
		t.Fatalf("TTL = %v, want 2m", cfg.TTL)
	}
	if cfg.Prefix != "other" {
		t.Fatalf("Prefix = %q, want other", cfg.Prefix)
	}
}

func TestLoadRateLimitConfigClampsNonsense(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "-5")
	t.Setenv("RATE_LIMIT_WINDOW", "not-a-duration")
	cfg := LoadRateLimitConfig()
	if cfg.Limit < 1 {
		t.Fatalf("Limit = %d, must be clamped to >= 1", cfg.Limit)
	}
	if cfg.Window <= 0 {
		t.Fatalf("Window = %v, must be clamped to > 0", cfg.Window)
	}
}

func TestParseDurFallsBack(t *testing.T) {
	if d := parseDur("90s"); d != 90*time.Second {
		t.Fatalf("parseDur(90s) = %v", d)
	}
	if d := parseDur("bogus"); d != time.Second {
		t.Fatalf("parseDur(bogus) = %v, want 1s fallback", d)
	}
}
