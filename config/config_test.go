package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("API_URL", "http://api.example.com/")
	t.Setenv("API_TIMEOUT", "not-a-duration")
	t.Setenv("PAGINATION_WINDOW", "-3")
	t.Setenv("TIMEZONE", "Nowhere/Land")
	t.Setenv("DRAFT_STORE", "Redis")

	cfg := LoadConfig()

	if cfg.APIURL != "http://api.example.com" {
		t.Errorf("APIURL = %q, want trailing slash trimmed", cfg.APIURL)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v, want 5s fallback", cfg.APITimeout)
	}
	if cfg.PaginationWindow != 5 {
		t.Errorf("PaginationWindow = %d, want 5 fallback", cfg.PaginationWindow)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Location = %v, want UTC fallback", cfg.Location)
	}
	if cfg.DraftStore != "redis" {
		t.Errorf("DraftStore = %q, want lower-cased redis", cfg.DraftStore)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DRAFT_TTL", "10m")
	t.Setenv("PAGINATION_WINDOW", "10")

	cfg := LoadConfig()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.DraftTTL != 10*time.Minute {
		t.Errorf("DraftTTL = %v, want 10m", cfg.DraftTTL)
	}
	if cfg.PaginationWindow != 10 {
		t.Errorf("PaginationWindow = %d, want 10", cfg.PaginationWindow)
	}
}
