package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// DefaultFeedURL is the USGS "all earthquakes, past 30 days" summary feed.
const DefaultFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_month.geojson"

// Config holds all service settings, populated from environment variables.
type Config struct {
	FeedURL     string        `env:"FEED_URL" envDefault:"https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_month.geojson"`
	FeedTimeout time.Duration `env:"FEED_TIMEOUT" envDefault:"10s"`
	OutputPath  string        `env:"OUTPUT_PATH" envDefault:"quakemap.html"`

	ServeEnabled    bool          `env:"SERVE_ENABLED" envDefault:"false"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Map view settings.
	CenterLat float64 `env:"MAP_CENTER_LAT" envDefault:"37.09"`
	CenterLon float64 `env:"MAP_CENTER_LON" envDefault:"-95.71"`
	Zoom      int     `env:"MAP_ZOOM" envDefault:"4"`
	Timezone  string  `env:"MAP_TIMEZONE" envDefault:"UTC"`
	Locale    string  `env:"MAP_LOCALE" envDefault:"en-US"`

	// Resolved from Timezone and Locale by Load.
	Location *time.Location
	Language language.Tag
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.FeedURL == "" {
		return nil, errors.New("FEED_URL is required")
	}
	if cfg.FeedTimeout <= 0 {
		return nil, errors.New("FEED_TIMEOUT must be positive")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if !cfg.ServeEnabled && cfg.OutputPath == "" {
		return nil, errors.New("OUTPUT_PATH is required when SERVE_ENABLED is false")
	}
	if cfg.CenterLat < -90 || cfg.CenterLat > 90 {
		return nil, errors.New("MAP_CENTER_LAT must be within [-90, 90]")
	}
	if cfg.CenterLon < -180 || cfg.CenterLon > 180 {
		return nil, errors.New("MAP_CENTER_LON must be within [-180, 180]")
	}
	if cfg.Zoom < 0 || cfg.Zoom > 20 {
		return nil, errors.New("MAP_ZOOM must be within [0, 20]")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid MAP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid MAP_LOCALE: %w", err)
	}
	cfg.Language = tag

	return cfg, nil
}
