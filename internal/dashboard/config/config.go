package config

import (
	"time"

	"stocksight/pkg/config"
)

// Dashboard holds page-level settings shared by the CLI and the TUI.
type Dashboard struct {
	DefaultRange  string        `mapstructure:"default_range"`
	RecentTTL     time.Duration `mapstructure:"recent_ttl"`
	RecentLimit   int           `mapstructure:"recent_limit"`
	ExportDir     string        `mapstructure:"export_dir"`
	WatchSchedule string        `mapstructure:"watch_schedule"`
}

// Config holds the full configuration for the dashboard.
type Config struct {
	App       config.App    `mapstructure:"app"`
	Logger    config.Logger `mapstructure:"logger"`
	API       config.API    `mapstructure:"api"`
	Dashboard Dashboard     `mapstructure:"dashboard"`
}

var defaults = map[string]interface{}{
	"app.name":                   "stocksight-dashboard",
	"logger.level":               "warn",
	"logger.encoding":            "console",
	"logger.output":              "stderr",
	"api.base_url":               "http://localhost:5001",
	"api.timeout":                "10s",
	"api.max_request_per_minute": 0,
	"dashboard.default_range":    "1M",
	"dashboard.recent_ttl":       "30m",
	"dashboard.recent_limit":     5,
	"dashboard.export_dir":       ".",
	"dashboard.watch_schedule":   "@every 1m",
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.LoadWithDefaults(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
