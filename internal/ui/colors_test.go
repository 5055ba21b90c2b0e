package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorConstants(t *testing.T) {
	colors := map[string]lipgloss.Color{
		"success":   ColorSuccess,
		"error":     ColorError,
		"warning":   ColorWarning,
		"info":      ColorInfo,
		"primary":   ColorPrimary,
		"secondary": ColorSecondary,
		"muted":     ColorMuted,
	}

	seen := make(map[lipgloss.Color]string)
	for name, c := range colors {
		assert.NotEmpty(t, string(c), name)
		if other, dup := seen[c]; dup {
			t.Errorf("%s and %s share color %q", name, other, c)
		}
		seen[c] = name
	}
}

func TestGradientColors(t *testing.T) {
	require.Len(t, GradientColors, 4)
	for i, c := range GradientColors {
		assert.Equal(t, byte('#'), string(c)[0], "gradient color %d should be hex", i)
	}
}

func TestStylesAreFunctional(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Success", SuccessStyle()},
		{"Error", ErrorStyle()},
		{"Warning", WarningStyle()},
		{"Info", InfoStyle()},
		{"Muted", MutedStyle()},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style.Render("test text"), "test text")
		})
	}
}

func TestPrintWarning(t *testing.T) {
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	PrintWarning("test warning message")

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.Contains(t, buf.String(), "test warning message")
	assert.Contains(t, buf.String(), SymbolWarning)
}

func TestDisableColors(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	DisableColors()

	assert.Equal(t, "plain", SuccessStyle().Render("plain"))
}
