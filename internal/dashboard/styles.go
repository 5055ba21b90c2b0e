package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette.
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97")
	ColorAccentDim = lipgloss.Color("#BF40FF")

	// Inbound traffic draws in cyan, outbound in purple.
	ColorGraph    = lipgloss.Color("#00FFFF")
	ColorGraphAlt = ColorAccentDim
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical)
)

// panelChrome is the horizontal space taken by PanelStyle's border and padding.
const panelChrome = 4

// MetricColorWithThresholds returns the severity color for a percentage.
func MetricColorWithThresholds(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case percent >= float64(critical):
		return ColorCritical
	case percent >= float64(warning):
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyleWithThresholds returns a foreground style for a percentage.
func MetricStyleWithThresholds(percent float64, warning, critical int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColorWithThresholds(percent, warning, critical))
}

// StyleFunc picks the color of a graph column from its drawn level.
type StyleFunc func(level, maxLevel int) lipgloss.Color

// thresholdStyle colors columns by how far up the graph they reach.
func thresholdStyle(warning, critical int) StyleFunc {
	return func(level, maxLevel int) lipgloss.Color {
		if maxLevel <= 0 {
			return ColorHealthy
		}
		return MetricColorWithThresholds(100*float64(level)/float64(maxLevel), warning, critical)
	}
}

// solidStyle colors every column the same.
func solidStyle(c lipgloss.Color) StyleFunc {
	return func(int, int) lipgloss.Color { return c }
}

// colorizeGraph applies style to each column of rows. Runs of equal color are
// rendered together to keep escape sequences short. A nil style returns the
// rows unchanged.
func colorizeGraph(rows []string, colLevels []int, maxLevel int, style StyleFunc) []string {
	if style == nil {
		return rows
	}

	colors := make([]lipgloss.Color, len(colLevels))
	for i, lvl := range colLevels {
		colors[i] = style(lvl, maxLevel)
	}

	out := make([]string, len(rows))
	for r, row := range rows {
		runes := []rune(row)
		var b strings.Builder
		start := 0
		for i := 1; i <= len(runes); i++ {
			if i < len(runes) && i < len(colors) && colors[i] == colors[start] {
				continue
			}
			seg := string(runes[start:i])
			if start < len(colors) {
				seg = lipgloss.NewStyle().Foreground(colors[start]).Render(seg)
			}
			b.WriteString(seg)
			start = i
		}
		out[r] = b.String()
	}
	return out
}

// ProgressBar renders a thin threshold-colored bar.
func ProgressBar(width int, percent float64, warning, critical int) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	color := MetricColorWithThresholds(percent, warning, critical)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", filled))
	track := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("━", width-filled))
	return bar + track
}
