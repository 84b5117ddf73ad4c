// ABOUTME: Tests for environment configuration loading
// ABOUTME: Verifies defaults and overrides

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RENTADESK_API_URL", "")
	t.Setenv("RENTADESK_STATE_DIR", "")
	t.Setenv("RENTADESK_DEBUG", "")

	cfg := Load()
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("expected default API URL, got %q", cfg.APIURL)
	}
	if cfg.Debug {
		t.Error("expected debug off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RENTADESK_API_URL", "https://api.rentals.example")
	t.Setenv("RENTADESK_STATE_DIR", "/tmp/rentadesk-test")
	t.Setenv("RENTADESK_DEBUG", "true")

	cfg := Load()
	if cfg.APIURL != "https://api.rentals.example" {
		t.Errorf("unexpected API URL %q", cfg.APIURL)
	}
	if cfg.StateDir != "/tmp/rentadesk-test" {
		t.Errorf("unexpected state dir %q", cfg.StateDir)
	}
	if !cfg.Debug {
		t.Error("expected debug on")
	}
}

func TestGetEnvBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("RENTADESK_DEBUG", "definitely")
	if Load().Debug {
		t.Error("expected invalid bool to fall back to default")
	}
}
