// Package config loads lithiumscope settings from defaults, the user config
// file, and environment variables, in that order of precedence (lowest first).
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// Defaults.
const (
	defaultOutputFormat = FormatTable
	defaultPrecision    = 1
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultPageSize     = 10
	maxPrecision        = 6
	configFileName      = "config.yaml"
	outputTypeFile      = "file"
)

// Environment variables that override file settings.
const (
	EnvHome         = "LITHIUMSCOPE_HOME"
	EnvLogLevel     = "LITHIUMSCOPE_LOG_LEVEL"
	EnvLogFormat    = "LITHIUMSCOPE_LOG_FORMAT"
	EnvDatasetDir   = "LITHIUMSCOPE_DATASET_DIR"
	EnvOutputFormat = "LITHIUMSCOPE_OUTPUT_FORMAT"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full lithiumscope configuration.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Dashboard DashboardConfig `yaml:"dashboard"`

	path string
}

// OutputConfig controls rendering defaults.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls the zerolog sink.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// DatasetConfig points at an alternative dataset directory. Empty means the
// embedded dataset.
type DatasetConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// DashboardConfig controls the interactive dashboard.
type DashboardConfig struct {
	PageSize int `yaml:"page_size"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: defaultOutputFormat,
			Precision:     defaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Dashboard: DashboardConfig{
			PageSize: defaultPageSize,
		},
	}
}

// New returns defaults merged with the user config file (if present) and
// environment overrides. A malformed config file is reported on stderr and
// ignored so the CLI stays usable.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.path = filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(cfg.path); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, cfg.path); mergeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", mergeErr)
			}
		}
	}

	cfg.applyEnv()
	return cfg
}

// Path returns the config file location this Config was loaded from.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvDatasetDir); v != "" {
		c.Dataset.Dir = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		return fmt.Errorf("%w: output.default_format %q (want table, json or ndjson)",
			ErrInvalidConfig, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision must be between 0 and %d, got %d",
			ErrInvalidConfig, maxPrecision, c.Output.Precision)
	}
	if c.Dashboard.PageSize < 1 {
		return fmt.Errorf("%w: dashboard.page_size must be >= 1, got %d",
			ErrInvalidConfig, c.Dashboard.PageSize)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Get returns a dotted-key setting as a string, e.g. "output.precision".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.precision":
		return strconv.Itoa(c.Output.Precision), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "dataset.dir":
		return c.Dataset.Dir, nil
	case "dashboard.page_size":
		return strconv.Itoa(c.Dashboard.PageSize), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}
