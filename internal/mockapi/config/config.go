package config

import (
	"stocksight/pkg/config"
)

// Fixtures locates the YAML file the backend serves from.
type Fixtures struct {
	Path string `mapstructure:"path"`
}

// Config holds the full configuration for the fixture backend.
type Config struct {
	App      config.App    `mapstructure:"app"`
	Logger   config.Logger `mapstructure:"logger"`
	Server   config.Server `mapstructure:"server"`
	Fixtures Fixtures      `mapstructure:"fixtures"`
}

var defaults = map[string]interface{}{
	"app.name":                "stocksight-mock-api",
	"logger.level":            "info",
	"logger.encoding":         "json",
	"logger.output":           "stdout",
	"server.host":             "0.0.0.0",
	"server.port":             5001,
	"server.shutdown_timeout": "10s",
	"fixtures.path":           "fixtures/stocks.yaml",
}

// Load loads the backend configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.LoadWithDefaults(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
