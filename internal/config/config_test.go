package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Error("rate limiting should default to enabled")
	}
	if cfg.Capacity != 60 {
		t.Errorf("Capacity = %d, want 60", cfg.Capacity)
	}
	if cfg.RefillInterval != time.Second {
		t.Errorf("RefillInterval = %v, want 1s", cfg.RefillInterval)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("zero capacity must clamp to 1, got %d", cfg.Capacity)
	}
	if want := 5 * cfg.RefillInterval; cfg.TTL != want {
		t.Errorf("TTL below five refill intervals must clamp to %v, got %v", want, cfg.TTL)
	}
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_PREFIX", "occupancy")
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("caching should default to enabled")
	}
	if cfg.TTL != 90*time.Second {
		t.Errorf("TTL = %v, want 90s", cfg.TTL)
	}
	if cfg.Prefix != "occupancy" {
		t.Errorf("Prefix = %q, want occupancy", cfg.Prefix)
	}
}

func TestLoadCacheConfigBadTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "not-a-duration")
	if cfg := LoadCacheConfig(); cfg.TTL != time.Second {
		t.Errorf("invalid TTL must fall back to 1s, got %v", cfg.TTL)
	}
}
