package cli

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/sot/internal/config"
	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCommand_RequiresTerminal(t *testing.T) {
	stubTerminal(t, false)

	err := dashboardCommand(dashboardOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTTY))
	assert.Contains(t, err.Error(), "sot spark")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		isolateInit(t)

		cfg, err := loadConfig(dashboardOptions{})
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("flags override the file", func(t *testing.T) {
		_, cwd := isolateInit(t)
		path := filepath.Join(cwd, config.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("graph:\n  mode: braille\n  height: 3\n"), 0o644))

		cfg, err := loadConfig(dashboardOptions{Graph: GraphFlags{Mode: "block", Height: 8}})
		require.NoError(t, err)
		assert.Equal(t, "block", cfg.Graph.Mode)
		assert.Equal(t, 8, cfg.Graph.Height)
	})

	t.Run("explicit config path", func(t *testing.T) {
		isolateInit(t)
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("procs:\n  sort: mem\n"), 0o644))

		cfg, err := loadConfig(dashboardOptions{ConfigPath: path})
		require.NoError(t, err)
		assert.Equal(t, "mem", cfg.Procs.Sort)
	})

	t.Run("invalid override is rejected", func(t *testing.T) {
		isolateInit(t)

		_, err := loadConfig(dashboardOptions{Graph: GraphFlags{Height: 40}})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Contains(t, err.Error(), "graph.height")
	})

	t.Run("missing explicit file", func(t *testing.T) {
		isolateInit(t)

		_, err := loadConfig(dashboardOptions{ConfigPath: "/no/such/sot.yaml"})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestSetupLogging(t *testing.T) {
	original, prefix := log.Writer(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(original)
		log.SetPrefix(prefix)
	})

	t.Run("discards without a file", func(t *testing.T) {
		t.Setenv("SOT_DEBUG", "")

		closeLog, err := setupLogging("")
		require.NoError(t, err)
		defer closeLog()

		log.Print("dropped")
	})

	t.Run("writes to the log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sot.log")

		closeLog, err := setupLogging(path)
		require.NoError(t, err)
		log.Print("hello from the dashboard")
		closeLog()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from the dashboard")
	})

	t.Run("unwritable path", func(t *testing.T) {
		_, err := setupLogging(filepath.Join(t.TempDir(), "missing", "dir", "sot.log"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}
