package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/lithiumscope/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
logging:
  level: warn
  format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "warn", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	// Untouched sections keep their defaults.
	assert.Equal(t, "table", target.Output.DefaultFormat)
	assert.Equal(t, 10, target.Dashboard.PageSize)
}

func TestShallowMergeYAML_SectionReplacedWholesale(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
output:
  precision: 3
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 3, target.Output.Precision)
	assert.Empty(t, target.Output.DefaultFormat, "absent field in a present section is zeroed")
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
dataset:
  dir: /opt/data
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "/opt/data", target.Dataset.Dir)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, "# only a comment\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.Default().Output, target.Output)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x"))

	err := config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading overlay file")

	bad := writeOverlay(t, "dashboard:\n  page_size: lots\n")
	err = config.ShallowMergeYAML(config.Default(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `applying overlay section "dashboard"`)
}
