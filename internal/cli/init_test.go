package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/sot/internal/config"
	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateInit runs the test from an empty directory with an empty HOME.
func isolateInit(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

// stubTerminal makes isTerminal report tty for every file.
func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(*os.File) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

func TestInit_WritesDefaults(t *testing.T) {
	_, cwd := isolateInit(t)

	var out bytes.Buffer
	err := Init(InitOptions{NonInteractive: true, Out: &out})
	require.NoError(t, err)

	path := filepath.Join(cwd, config.ConfigFileName)
	require.FileExists(t, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	assert.Contains(t, ansi.Strip(out.String()), "graphs braille • config "+config.ConfigFileName)
	assert.Contains(t, out.String(), "Created")
	assert.Contains(t, out.String(), "graph.mode")
	assert.Contains(t, out.String(), "braille")
	assert.Contains(t, out.String(), "Next steps:")
}

func TestInit_Global(t *testing.T) {
	home, cwd := isolateInit(t)

	var out bytes.Buffer
	require.NoError(t, Init(InitOptions{Global: true, NonInteractive: true, Out: &out}))

	assert.FileExists(t, filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile))
	assert.NoFileExists(t, filepath.Join(cwd, config.ConfigFileName))
}

func TestInit_ExistingConfig(t *testing.T) {
	_, cwd := isolateInit(t)
	path := filepath.Join(cwd, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  mode: block\n"), 0o644))

	t.Run("refuses without force", func(t *testing.T) {
		var out bytes.Buffer
		err := Init(InitOptions{NonInteractive: true, Out: &out})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Contains(t, err.Error(), "--force")

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "graph:\n  mode: block\n", string(data), "existing file is untouched")
	})

	t.Run("overwrites with force", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Init(InitOptions{NonInteractive: true, Overwrite: true, Out: &out}))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "braille", cfg.Graph.Mode)
	})
}

func TestGetInitDefaults(t *testing.T) {
	tests := []struct {
		name           string
		nonInteractive string
		ci             string
		tty            bool
		want           bool
	}{
		{name: "terminal", tty: true, want: false},
		{name: "no terminal", tty: false, want: true},
		{name: "env flag", nonInteractive: "true", tty: true, want: true},
		{name: "env flag numeric", nonInteractive: "1", tty: true, want: true},
		{name: "env flag off", nonInteractive: "no", tty: true, want: false},
		{name: "ci", ci: "true", tty: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SOT_NON_INTERACTIVE", tt.nonInteractive)
			t.Setenv("CI", tt.ci)
			stubTerminal(t, tt.tty)

			assert.Equal(t, tt.want, getInitDefaults().NonInteractive)
		})
	}
}

func TestValidateHeightInput(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"4", false},
		{" 16 ", false},
		{"1", false},
		{"0", true},
		{"17", true},
		{"tall", true},
		{"", true},
	}
	for _, tt := range tests {
		err := validateHeightInput(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
		}
	}
}

func TestSummaryRows(t *testing.T) {
	cfg := config.DefaultConfig()
	rows := summaryRows(cfg)

	got := make(map[string]string)
	for _, r := range rows {
		got[r[0]] = r[1]
	}
	assert.Equal(t, "all", got["network.interface"])
	assert.Equal(t, "4", got["graph.height"])
	assert.Equal(t, "1s", got["refresh.cpu"])
}
