package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fleetdeck.yml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	t.Setenv("FLEETDECK_CONFIG", path)
}

func TestLoadAppliesDefaults(t *testing.T) {
	writeConfigFile(t, `
telemetry:
  baseurl: https://telemetry.example.com/api
  authtoken: abc123
`)

	if err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Config.Dashboard.Listen != ":8080" {
		t.Errorf("unexpected default listen %q", Config.Dashboard.Listen)
	}
	if Config.Dashboard.RefreshInterval() != 30*time.Second {
		t.Errorf("unexpected default refresh interval %s", Config.Dashboard.RefreshInterval())
	}
	if Config.RequestTimeout() != 15*time.Second {
		t.Errorf("unexpected default request timeout %s", Config.RequestTimeout())
	}
	if Config.Geocoding.Locale != "en-GB" {
		t.Errorf("unexpected default locale %q", Config.Geocoding.Locale)
	}
	if Config.Weather.BaseURL == "" {
		t.Error("expected a default weather base URL")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	writeConfigFile(t, `
telemetry:
  baseurl: https://telemetry.example.com/api
  authtoken: abc123
dashboard:
  listen: ":9000"
`)

	t.Setenv("FLEETDECK_LISTEN", ":3000")
	t.Setenv("FLEETDECK_GEOCODING_LOCALE", "fr-FR")

	if err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Config.Dashboard.Listen != ":3000" {
		t.Errorf("environment override should win, got %q", Config.Dashboard.Listen)
	}
	if Config.Geocoding.Locale != "fr-FR" {
		t.Errorf("unexpected locale %q", Config.Geocoding.Locale)
	}
}

func TestLoadRejectsMissingCredentials(t *testing.T) {
	writeConfigFile(t, `
telemetry:
  baseurl: https://telemetry.example.com/api
`)

	if err := Load(); err == nil {
		t.Error("expected a validation error without an auth token")
	}
}

func TestLoadRejectsMalformedURL(t *testing.T) {
	writeConfigFile(t, `
telemetry:
  baseurl: not a url
  authtoken: abc123
`)

	if err := Load(); err == nil {
		t.Error("expected a validation error for a malformed base URL")
	}
}
