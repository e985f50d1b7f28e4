// ABOUTME: Tests for configuration loading
// ABOUTME: Verifies environment overrides, defaults, and URL normalization

package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.HTTPTimeout != 30 {
		t.Errorf("HTTPTimeout = %d, want 30", cfg.HTTPTimeout)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SMARTSALES_API_URL", "https://api.example.com/api/v1")
	t.Setenv("SMARTSALES_HTTP_TIMEOUT", "5")
	t.Setenv("SMARTSALES_DEBUG", "true")
	t.Setenv("SMARTSALES_CONFIG_DIR", "/tmp/smartsales-test")

	cfg := Load()

	if cfg.APIURL != "https://api.example.com/api/v1" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 5 {
		t.Errorf("HTTPTimeout = %d, want 5", cfg.HTTPTimeout)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.ConfigDir != "/tmp/smartsales-test" {
		t.Errorf("ConfigDir = %q", cfg.ConfigDir)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("SMARTSALES_HTTP_TIMEOUT", "not-a-number")

	cfg := Load()
	if cfg.HTTPTimeout != 30 {
		t.Errorf("HTTPTimeout = %d, want default 30", cfg.HTTPTimeout)
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"localhost:8000/api/v1", "http://localhost:8000/api/v1"},
		{"http://localhost:8000", "http://localhost:8000"},
		{"https://sales.example.com", "https://sales.example.com"},
	}

	for _, tc := range tests {
		if got := ensureScheme(tc.in); got != tc.want {
			t.Errorf("ensureScheme(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "smartsales")
	if got := DefaultConfigDir(); got != want {
		t.Errorf("DefaultConfigDir() = %q, want %q", got, want)
	}
}
