package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SYKER_LISTEN_ADDR", "")
	t.Setenv("SYKER_FRONTEND_DOMAIN", "")

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("Expected default listen address :8080, got %q", cfg.ListenAddr)
	}
	if cfg.FrontendDomain != "" {
		t.Errorf("Expected empty frontend domain, got %q", cfg.FrontendDomain)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SYKER_LISTEN_ADDR", ":9000")
	t.Setenv("SYKER_FRONTEND_DOMAIN", " app.example.com ")

	cfg := Load()
	if cfg.ListenAddr != ":9000" {
		t.Errorf("Expected listen address :9000, got %q", cfg.ListenAddr)
	}
	if cfg.FrontendDomain != "app.example.com" {
		t.Errorf("Expected trimmed frontend domain, got %q", cfg.FrontendDomain)
	}
}
