// Package config loads application configuration. Values come from an
// optional YAML file pointed to by GRADEBOOK_CONFIG, with environment
// variables taking precedence over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig `yaml:"app"`

	// Storage
	Storage StorageConfig `yaml:"storage"`

	// Report rendering
	Report ReportConfig `yaml:"report"`

	// Observability
	Observability ObservabilityConfig `yaml:"observability"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Debug forces debug-level logging regardless of the configured level.
	Debug bool `yaml:"debug"`
}

// StorageConfig holds flat-file persistence settings.
type StorageConfig struct {
	// DataFile is the default roster file used by save/load when the caller
	// does not supply a path.
	DataFile string `yaml:"data_file"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	// ChartMarker is the marker character repeated in the chart report.
	ChartMarker string `yaml:"chart_marker"`

	// TopGroupLabel is the name of the composite group holding the top scorers.
	TopGroupLabel string `yaml:"top_group_label"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // console, json
}

// Load loads configuration: defaults, then the YAML file named by
// GRADEBOOK_CONFIG (if set), then environment variable overrides.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("GRADEBOOK_CONFIG"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "gradebook-hub",
			Version: "0.1.0",
		},
		Storage: StorageConfig{
			DataFile: "gradebook.txt",
		},
		Report: ReportConfig{
			ChartMarker:   "#",
			TopGroupLabel: "Best students",
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.App.Name = getEnv("GRADEBOOK_APP_NAME", cfg.App.Name)
	cfg.App.Version = getEnv("GRADEBOOK_APP_VERSION", cfg.App.Version)
	cfg.App.Debug = getEnvBool("GRADEBOOK_DEBUG", cfg.App.Debug)
	cfg.Storage.DataFile = getEnv("GRADEBOOK_DATA_FILE", cfg.Storage.DataFile)
	cfg.Report.ChartMarker = getEnv("GRADEBOOK_CHART_MARKER", cfg.Report.ChartMarker)
	cfg.Report.TopGroupLabel = getEnv("GRADEBOOK_TOP_GROUP_LABEL", cfg.Report.TopGroupLabel)
	cfg.Observability.LogLevel = getEnv("GRADEBOOK_LOG_LEVEL", cfg.Observability.LogLevel)
	cfg.Observability.LogFormat = getEnv("GRADEBOOK_LOG_FORMAT", cfg.Observability.LogFormat)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Storage.DataFile == "" {
		errs = append(errs, "storage.data_file must not be empty")
	}
	if len([]rune(c.Report.ChartMarker)) != 1 {
		errs = append(errs, "report.chart_marker must be a single character")
	}
	if c.Report.TopGroupLabel == "" {
		errs = append(errs, "report.top_group_label must not be empty")
	}
	switch strings.ToLower(c.Observability.LogFormat) {
	case "console", "json":
	default:
		errs = append(errs, "observability.log_format must be console or json")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Marker returns the chart marker as a rune.
func (c *Config) Marker() rune {
	return []rune(c.Report.ChartMarker)[0]
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
