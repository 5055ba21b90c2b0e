package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo is what the init banner reports about the new setup.
type HeaderInfo struct {
	Version    string // e.g. "v0.4.0"
	Mode       string // graph glyphs, "braille" or "block"
	ConfigPath string
}

// minHeaderWidth is the shortest rule drawn under the banner.
const minHeaderWidth = 24

// RenderHeader renders the name and version, the graph mode and config file
// on their own line, and a rule as wide as the widest line.
func RenderHeader(info HeaderInfo) string {
	name := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true)
	accent := lipgloss.NewStyle().Foreground(ColorNeonCyan)
	muted := lipgloss.NewStyle().Foreground(ColorMuted)

	title := name.Render("sot")
	if info.Version != "" {
		title += " " + accent.Render(info.Version)
	}
	lines := []string{title}

	var details []string
	if info.Mode != "" {
		details = append(details, muted.Render("graphs ")+accent.Render(info.Mode))
	}
	if info.ConfigPath != "" {
		details = append(details, muted.Render("config ")+accent.Render(info.ConfigPath))
	}
	if len(details) > 0 {
		lines = append(lines, strings.Join(details, muted.Render(" "+SymbolBullet+" ")))
	}

	width := minHeaderWidth
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	rule := lipgloss.NewStyle().Foreground(ColorGlassBorder).Render(strings.Repeat("━", width))

	return strings.Join(append(lines, rule), "\n") + "\n"
}
