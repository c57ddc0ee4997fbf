package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/lithiumscope/internal/config"
)

func TestConfigInit_CreatesDefaults(t *testing.T) {
	home := setupCLITest(t)

	out, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)

	var saved config.Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, config.FormatTable, saved.Output.DefaultFormat)
	assert.Equal(t, 10, saved.Dashboard.PageSize)
}

func TestConfigInit_ExistingRequiresForce(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  precision: 3\n"), 0o600))

	_, err := runCLI(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force to overwrite")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "precision: 3")

	config.ResetGlobalConfigForTest()
	_, err = runCLI(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "precision: 1")
}

func TestConfigShowAndGet(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  default_format: json\n  precision: 2\n"), 0o600))

	out, err := runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_format: json")
	assert.Contains(t, out, "page_size: 10")

	config.ResetGlobalConfigForTest()
	out, err = runCLI(t, "config", "get", "output.precision")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	config.ResetGlobalConfigForTest()
	_, err = runCLI(t, "config", "get", "nope")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out, err := runCLI(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Dataset: embedded")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("dashboard:\n  page_size: 0\n"), 0o600))
	config.ResetGlobalConfigForTest()

	_, err = runCLI(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigValidate_BadDatasetDir(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvDatasetDir, t.TempDir())

	_, err := runCLI(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset.dir is not a valid dataset")
}
