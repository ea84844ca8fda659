package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fleetdeck/fleetdeck/pkg/util"
)

// Config is the global application configuration
var Config AppConfig

const (
	defaultListen                 = ":8080"
	defaultRefreshIntervalSeconds = 30
	defaultRequestTimeoutSeconds  = 15
	defaultLocale                 = "en-GB"
)

type TelemetryConfig struct {
	BaseURL   string `yaml:"baseurl" validate:"required,url"`
	AuthToken string `yaml:"authtoken" validate:"required"`
}

type WeatherConfig struct {
	BaseURL string `yaml:"baseurl" validate:"omitempty,url"`
}

type GeocodingConfig struct {
	BaseURL string `yaml:"baseurl" validate:"omitempty,url"`
	Locale  string `yaml:"locale"`
}

type DashboardConfig struct {
	Listen                 string `yaml:"listen"`
	RefreshIntervalSeconds int    `yaml:"refreshintervalseconds" validate:"gte=0"`
}

func (d DashboardConfig) RefreshInterval() time.Duration {
	return time.Duration(d.RefreshIntervalSeconds) * time.Second
}

type AppConfig struct {
	Telemetry TelemetryConfig `yaml:"telemetry" validate:"required"`
	Weather   WeatherConfig   `yaml:"weather"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Dashboard DashboardConfig `yaml:"dashboard"`

	RequestTimeoutSeconds int `yaml:"requesttimeoutseconds" validate:"gte=0"`
}

func (a AppConfig) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Load reads fleetdeck.yml (path overridable with FLEETDECK_CONFIG), applies
// environment overrides and validates the result into the global Config.
func Load() error {
	godotenv.Load(".env")

	var cfg AppConfig

	configPath := util.GetEnvironmentVariable("FLEETDECK_CONFIG", "fleetdeck.yml")

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	applyEnvironmentOverrides(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	Config = cfg

	return nil
}

func applyEnvironmentOverrides(cfg *AppConfig) {
	env := util.GetEnvironmentVariables()

	if env["FLEETDECK_TELEMETRY_URL"] != "" {
		cfg.Telemetry.BaseURL = env["FLEETDECK_TELEMETRY_URL"]
	}
	if env["FLEETDECK_TELEMETRY_TOKEN"] != "" {
		cfg.Telemetry.AuthToken = env["FLEETDECK_TELEMETRY_TOKEN"]
	}
	if env["FLEETDECK_WEATHER_URL"] != "" {
		cfg.Weather.BaseURL = env["FLEETDECK_WEATHER_URL"]
	}
	if env["FLEETDECK_GEOCODING_URL"] != "" {
		cfg.Geocoding.BaseURL = env["FLEETDECK_GEOCODING_URL"]
	}
	if env["FLEETDECK_GEOCODING_LOCALE"] != "" {
		cfg.Geocoding.Locale = env["FLEETDECK_GEOCODING_LOCALE"]
	}
	if env["FLEETDECK_LISTEN"] != "" {
		cfg.Dashboard.Listen = env["FLEETDECK_LISTEN"]
	}
	if env["FLEETDECK_REFRESH_INTERVAL"] != "" {
		if d, err := time.ParseDuration(env["FLEETDECK_REFRESH_INTERVAL"]); err == nil {
			cfg.Dashboard.RefreshIntervalSeconds = int(d.Seconds())
		}
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.open-meteo.com/v1/forecast"
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = "https://nominatim.openstreetmap.org/reverse"
	}
	if cfg.Geocoding.Locale == "" {
		cfg.Geocoding.Locale = defaultLocale
	}
	if cfg.Dashboard.Listen == "" {
		cfg.Dashboard.Listen = defaultListen
	}
	if cfg.Dashboard.RefreshIntervalSeconds == 0 {
		cfg.Dashboard.RefreshIntervalSeconds = defaultRefreshIntervalSeconds
	}
	if cfg.RequestTimeoutSeconds == 0 {
		cfg.RequestTimeoutSeconds = defaultRequestTimeoutSeconds
	}
}
