package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, 1, cfg.Output.Precision)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Dataset.Dir)
	assert.Equal(t, 10, cfg.Dashboard.PageSize)
	assert.NoError(t, cfg.Validate())
}

func TestNew_FileAndEnvPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  default_format: json
  precision: 2
dataset:
  dir: /from/file
`), 0600))

	cfg := New()
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, "/from/file", cfg.Dataset.Dir)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.Path())

	t.Setenv(EnvDatasetDir, "/from/env")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvOutputFormat, "ndjson")
	cfg = New()
	assert.Equal(t, "/from/env", cfg.Dataset.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "ndjson", cfg.Output.DefaultFormat)
}

func TestNew_MalformedFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output: [unclosed"), 0600))

	cfg := New()
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "csv is not a default format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "csv" },
			wantErr: "output.default_format",
		},
		{
			name:    "negative precision",
			mutate:  func(c *Config) { c.Output.Precision = -1 },
			wantErr: "output.precision",
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Dashboard.PageSize = 0 },
			wantErr: "dashboard.page_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Dataset.Dir = "/srv/lithium"

	require.NoError(t, cfg.Save(path))

	loaded := Default()
	require.NoError(t, ShallowMergeYAML(loaded, path))
	assert.Equal(t, "/srv/lithium", loaded.Dataset.Dir)
	assert.Equal(t, cfg.Output, loaded.Output)
}

func TestGet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("output.precision")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	v, err = cfg.Get("dashboard.page_size")
	require.NoError(t, err)
	assert.Equal(t, "10", v)

	_, err = cfg.Get("nope")
	assert.Error(t, err)
}
