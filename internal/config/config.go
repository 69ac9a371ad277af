// Package config loads dashboard configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API       APIConfig
	UI        UIConfig
	Telemetry TelemetryConfig
	Log       LogConfig
}

// APIConfig points the dashboard at its backend.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	ToastTTL        time.Duration `mapstructure:"toast_ttl"`
	InitialPath     string        `mapstructure:"initial_path"`
}

// TelemetryConfig controls OTLP trace export. An empty endpoint disables
// export entirely.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// LogConfig controls the file logger. An empty file disables logging; the
// TUI owns the terminal, so logs never go to stdout or stderr.
type LogConfig struct {
	File  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// CEREBRO_, e.g. CEREBRO_API_BASE_URL.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("ui.refresh_interval", 30*time.Second)
	v.SetDefault("ui.toast_ttl", 4*time.Second)
	v.SetDefault("ui.initial_path", "/")
	v.SetDefault("telemetry.endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("telemetry.service_name", "cerebro-dashboard")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CEREBRO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cerebro"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CEREBRO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", c.API.Timeout)
	}
	if c.UI.ToastTTL <= 0 {
		return fmt.Errorf("ui.toast_ttl must be positive, got %v", c.UI.ToastTTL)
	}
	return nil
}
