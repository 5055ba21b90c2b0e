package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeader(t *testing.T) {
	out := ansi.Strip(RenderHeader(HeaderInfo{
		Version:    "v1.2.3",
		Mode:       "braille",
		ConfigPath: "/home/me/.config/sot/config.yaml",
	}))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "sot v1.2.3", lines[0])
	assert.Equal(t, "graphs braille • config /home/me/.config/sot/config.yaml", lines[1])
	assert.Equal(t, strings.Repeat("━", len([]rune(lines[1]))), lines[2], "rule spans the widest line")
}

func TestRenderHeader_Minimal(t *testing.T) {
	out := ansi.Strip(RenderHeader(HeaderInfo{}))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2, "name and rule only")
	assert.Equal(t, "sot", lines[0])
	assert.Equal(t, strings.Repeat("━", minHeaderWidth), lines[1])
}

func TestRenderHeader_ModeOnly(t *testing.T) {
	out := ansi.Strip(RenderHeader(HeaderInfo{Mode: "block"}))

	assert.Contains(t, out, "graphs block\n")
	assert.NotContains(t, out, "config")
}
