package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if len(cfg.DataPaths) != 1 || cfg.DataPaths[0] != "data/clinics.json" {
		t.Errorf("DataPaths = %v, want [data/clinics.json]", cfg.DataPaths)
	}
	if cfg.MaxChatResults != 5 {
		t.Errorf("MaxChatResults = %d, want 5", cfg.MaxChatResults)
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Errorf("ProviderTimeout = %v, want 10s", cfg.ProviderTimeout)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty (in-memory default)", cfg.RedisAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CLINIC_DATA_PATHS", "a.json, b.json ,")
	t.Setenv("PROVIDER_TIMEOUT", "2s")
	t.Setenv("SEMANTIC_SEARCH", "false")
	t.Setenv("ADVISOR_MAX_RESULTS", "3")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if len(cfg.DataPaths) != 2 || cfg.DataPaths[0] != "a.json" || cfg.DataPaths[1] != "b.json" {
		t.Errorf("DataPaths = %v, want [a.json b.json]", cfg.DataPaths)
	}
	if cfg.ProviderTimeout != 2*time.Second {
		t.Errorf("ProviderTimeout = %v, want 2s", cfg.ProviderTimeout)
	}
	if cfg.SemanticSearch {
		t.Error("SemanticSearch should be disabled")
	}
	if cfg.MaxChatResults != 3 {
		t.Errorf("MaxChatResults = %d, want 3", cfg.MaxChatResults)
	}
}

func TestGetEnvAsDurationInvalid(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.ProviderTimeout != 10*time.Second {
		t.Errorf("invalid duration should fall back to default, got %v", cfg.ProviderTimeout)
	}
}
