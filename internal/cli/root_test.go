package cli

import (
	stderrors "errors"
	"testing"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  stderrors.New(`unknown command "foo" for "sot"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  stderrors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  stderrors.New("permission denied"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  stderrors.New(`unknown command "foo" for "sot"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  stderrors.New(`unknown command "my-graph" for "sot"`),
			want: "my-graph",
		},
		{
			name: "no quotes returns empty",
			err:  stderrors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  stderrors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "structured error keeps its suggestion",
			err:      errors.New(errors.ErrTTY, "sot needs an interactive terminal", "Run it in a terminal"),
			contains: []string{"✗ sot needs an interactive terminal", "Run it in a terminal"},
		},
		{
			name:     "unknown command gets a hint",
			err:      stderrors.New(`unknown command "grpah" for "sot"`),
			contains: []string{"Unknown command 'grpah'", "sot --help"},
		},
		{
			name:     "close typo suggests the command",
			err:      stderrors.New(`unknown command "sprak" for "sot"`),
			contains: []string{"Did you mean spark?"},
		},
		{
			name:     "plain error gets the fail symbol",
			err:      stderrors.New("boom"),
			contains: []string{"✗ boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatError(tt.err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"spark", "init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "--%s should be persistent", name)
	}
	for _, name := range []string{"mode", "height", "log-file"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "--%s should be on the root command", name)
	}
}
