package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sot",
		Short: "Live system dashboard drawn with braille and block sparklines",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for sot")
	assert.Contains(t, output, "__sot_debug")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "#compdef sot")
	assert.Contains(t, output, "_sot()")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))

	output := buf.String()
	for _, name := range []string{"spark", "init", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, completionCmd.ValidArgs)
}

func TestSparkCommandFlags(t *testing.T) {
	for _, name := range []string{"width", "height", "min", "max", "mode", "flip"} {
		assert.NotNil(t, sparkCmd.Flags().Lookup(name), "spark should have --%s", name)
	}
}

func TestInitCommandFlags(t *testing.T) {
	force := initCmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
	assert.NotNil(t, initCmd.Flags().Lookup("global"))
}
