package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/lithiumscope/internal/cli"
	"github.com/rshade/lithiumscope/internal/config"
	"github.com/rshade/lithiumscope/pkg/version"
)

func TestRun(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Cleanup(config.ResetGlobalConfigForTest)

	assert.Equal(t, 0, run([]string{"version"}))

	config.ResetGlobalConfigForTest()
	assert.Equal(t, 1, run([]string{"facilities", "--sort", "altitude"}))
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.String())
		assert.NotNil(t, root)
		assert.Equal(t, "lithiumscope", root.Use)
	})
}
