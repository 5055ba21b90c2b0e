package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/sot/internal/ui"
	"github.com/rileyhilliard/sot/internal/util"
)

// renderDashboard renders the header, graph panels, process table and footer.
func (m Model) renderDashboard() string {
	sections := []string{
		m.renderHeader(),
		m.renderGraphPanels(),
		m.renderConnectionsPanel(),
		m.renderProcessPanel(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders host identity and freshness on one line.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("sot")

	parts := []string{}
	if m.info != nil {
		parts = append(parts, m.info.Hostname)
		if m.info.Platform != "" {
			parts = append(parts, m.info.Platform)
		}
		if m.info.Kernel != "" {
			parts = append(parts, m.info.Kernel)
		}
		parts = append(parts, "up "+formatUptime(m.info.Uptime))
	} else if e := m.errs[panelInfo]; e != "" {
		parts = append(parts, e)
	}
	parts = append(parts, m.mode.String())
	if !m.lastUpdate.IsZero() {
		parts = append(parts, "updated "+formatAge(m.now().Sub(m.lastUpdate)))
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + strings.Join(parts, " | "))

	return HeaderStyle.MaxWidth(m.width).Render(title + stats)
}

// renderGraphPanels lays out CPU and memory on the left, disk and network on
// the right, or all four stacked when the terminal is narrow.
func (m Model) renderGraphPanels() string {
	left, right := m.columnWidths()
	single, paired := m.panelHeights()

	if m.columns() == 1 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderCPUPanel(left, single),
			m.renderMemoryPanel(left, single),
			m.renderDiskPanel(right, paired),
			m.renderNetworkPanel(right, paired),
		)
	}

	rowHeight := max(single, paired)
	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCPUPanel(left, rowHeight),
		m.renderMemoryPanel(left, rowHeight),
	)
	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		m.renderDiskPanel(right, rowHeight),
		m.renderNetworkPanel(right, rowHeight),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)
}

// renderPanel boxes lines into a panel of the given outer size.
func renderPanel(lines []string, width, height int) string {
	style := PanelStyle.Width(max(width-2, 1))
	if height > 2 {
		style = style.Height(height - 2)
	}
	inner := max(width-panelChrome, 1)
	for i, l := range lines {
		lines[i] = lipgloss.NewStyle().MaxWidth(inner).Render(l)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// panelTitle renders "NAME value" with the value styled.
func panelTitle(name, value string, valueStyle lipgloss.Style) string {
	return PanelTitleStyle.Render(name) + " " + valueStyle.Render(value)
}

// graphLines renders a series or placeholder rows while it is empty.
func (m Model) graphLines(s *series, height int, style StyleFunc) []string {
	rows := s.graph()
	if rows == nil {
		out := make([]string, height)
		if height > 0 {
			out[0] = MutedStyle.Render("collecting...")
		}
		return out
	}
	if !m.color {
		return rows
	}
	return colorizeGraph(rows, s.stream.ColumnLevels(), s.stream.MaxLevel(), style)
}

func (m Model) percentStyle() StyleFunc {
	return thresholdStyle(m.warning, m.critical)
}

func (m Model) renderCPUPanel(width, height int) string {
	value := "--"
	valueStyle := MutedStyle
	if m.cpu != nil {
		value = fmt.Sprintf("%5.1f%%", m.cpu.Percent)
		valueStyle = MetricStyleWithThresholds(m.cpu.Percent, m.warning, m.critical)
	}

	lines := []string{panelTitle("CPU", value, valueStyle)}
	lines = append(lines, m.graphLines(m.cpuSeries, m.graphHeight, m.percentStyle())...)

	switch {
	case m.errs[panelCPU] != "":
		lines = append(lines, ErrorStyle.Render(m.errs[panelCPU]))
	case m.cpu != nil:
		stats := fmt.Sprintf("load %.2f %.2f %.2f", m.cpu.LoadAvg[0], m.cpu.LoadAvg[1], m.cpu.LoadAvg[2])
		if m.cpu.LogicalCores > 0 {
			stats += fmt.Sprintf(" %s %d cores", ui.SymbolBullet, m.cpu.LogicalCores)
		}
		if m.cpu.TempCelsius > 0 {
			stats += fmt.Sprintf(" %s %.0f°C", ui.SymbolBullet, m.cpu.TempCelsius)
		}
		lines = append(lines, LabelStyle.Render(stats))
	}

	return renderPanel(lines, width, height)
}

func (m Model) renderMemoryPanel(width, height int) string {
	value := "--"
	valueStyle := MutedStyle
	if m.mem != nil {
		value = fmt.Sprintf("%5.1f%%", m.mem.Percent)
		valueStyle = MetricStyleWithThresholds(m.mem.Percent, m.warning, m.critical)
	}

	lines := []string{panelTitle("Mem", value, valueStyle)}
	lines = append(lines, m.graphLines(m.memSeries, m.graphHeight, m.percentStyle())...)

	switch {
	case m.errs[panelMemory] != "":
		lines = append(lines, ErrorStyle.Render(m.errs[panelMemory]))
	case m.mem != nil:
		stats := fmt.Sprintf("%s / %s %s avail %s",
			formatBytes(m.mem.UsedBytes), formatBytes(m.mem.TotalBytes),
			ui.SymbolBullet, formatBytes(m.mem.AvailableBytes))
		if m.mem.SwapTotalBytes > 0 {
			stats += fmt.Sprintf(" %s swap %.0f%%", ui.SymbolBullet, m.mem.SwapPercent)
		}
		lines = append(lines, LabelStyle.Render(stats))
	}

	return renderPanel(lines, width, height)
}

func (m Model) renderDiskPanel(width, height int) string {
	value := "--"
	valueStyle := MutedStyle
	name := "Disk"
	if m.disk != nil {
		name = "Disk " + m.disk.Mount
		value = fmt.Sprintf("%5.1f%%", m.disk.Percent)
		valueStyle = MetricStyleWithThresholds(m.disk.Percent, m.warning, m.critical)
	}

	pair := m.pairHeight()
	lines := []string{panelTitle(name, value, valueStyle)}
	lines = append(lines, m.graphLines(m.diskRead, pair, solidStyle(ColorGraph))...)
	lines = append(lines, m.graphLines(m.diskWrite, pair, solidStyle(ColorGraphAlt))...)

	switch {
	case m.errs[panelDisk] != "":
		lines = append(lines, ErrorStyle.Render(m.errs[panelDisk]))
	case m.disk != nil:
		lines = append(lines, LabelStyle.Render(fmt.Sprintf("read %s %s write %s %s free %s",
			FormatRate(m.disk.ReadPerSecond), ui.SymbolBullet,
			FormatRate(m.disk.WritePerSecond), ui.SymbolBullet,
			formatBytes(m.disk.FreeBytes))))
	}

	return renderPanel(lines, width, height)
}

func (m Model) renderNetworkPanel(width, height int) string {
	name := "Net"
	value := ""
	if m.net != nil {
		name = "Net " + m.net.Interface
		value = fmt.Sprintf("max %s", FormatRate(m.netRecv.vmax))
	}

	pair := m.pairHeight()
	lines := []string{panelTitle(name, value, MutedStyle)}
	lines = append(lines, m.graphLines(m.netRecv, pair, solidStyle(ColorGraph))...)
	lines = append(lines, m.graphLines(m.netSent, pair, solidStyle(ColorGraphAlt))...)

	switch {
	case m.errs[panelNetwork] != "":
		lines = append(lines, ErrorStyle.Render(m.errs[panelNetwork]))
	case m.net != nil:
		lines = append(lines, LabelStyle.Render(fmt.Sprintf("↓ %s  ↑ %s",
			FormatRate(m.net.RecvPerSecond), FormatRate(m.net.SentPerSecond))))
	}

	return renderPanel(lines, width, height)
}

// renderConnectionsPanel renders socket counts on one line.
func (m Model) renderConnectionsPanel() string {
	var line string
	switch {
	case m.errs[panelConnections] != "":
		line = ErrorStyle.Render(m.errs[panelConnections])
	case m.conns == nil:
		line = MutedStyle.Render("collecting...")
	default:
		c := m.conns
		line = fmt.Sprintf("%s est %s  listen %s  time_wait %s  ports %d  remotes %d",
			PanelTitleStyle.Render("Conns"),
			ValueStyle.Render(fmt.Sprint(c.Established)),
			ValueStyle.Render(fmt.Sprint(c.Listen)),
			ValueStyle.Render(fmt.Sprint(c.TimeWait)),
			c.LocalPorts, c.RemoteHosts)
		line += "  " + MutedStyle.Render(util.JoinOrNone(c.TopRemotes))
	}
	return renderPanel([]string{line}, m.width, connPanelRows)
}

// renderProcessPanel renders the process table with its sort order.
func (m Model) renderProcessPanel() string {
	title := panelTitle("Procs", fmt.Sprintf("%d %s sort:%s", len(m.procs), ui.SymbolBullet, m.procSort), MutedStyle)
	body := m.procTable.View()
	if e := m.errs[panelProcesses]; e != "" {
		body = ErrorStyle.Render(e) + "\n" + body
	}
	return PanelStyle.Width(max(m.width-2, 1)).Render(title + "\n" + body)
}

// renderFooter shows key hints, or a recent action result.
func (m Model) renderFooter() string {
	if m.status != "" && m.now().Before(m.statusUntil) {
		style := LabelStyle
		if m.statusIsErr {
			style = ErrorStyle
		}
		return FooterStyle.MaxWidth(m.width).Render(style.Render(m.status))
	}
	return FooterStyle.MaxWidth(m.width).Render(m.help.ShortHelpView(keys.ShortHelp()))
}

// formatBytes formats a byte count with binary units, e.g. "1.5 GiB".
func formatBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// FormatRate formats a bytes-per-second rate with the same binary units as
// formatBytes, e.g. "1.5 KiB/s". Negative and NaN rates show as zero.
func FormatRate(bytesPerSecond float64) string {
	switch {
	case !(bytesPerSecond > 0):
		return formatBytes(0) + "/s"
	case bytesPerSecond >= 1<<63:
		return formatBytes(math.MaxUint64) + "/s"
	}
	return formatBytes(uint64(bytesPerSecond)) + "/s"
}

// formatUptime renders a duration as "3d 4h", "4h 12m" or "12m".
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// formatAge renders how long ago something happened.
func formatAge(d time.Duration) string {
	s := int(d.Seconds())
	switch {
	case s <= 0:
		return "just now"
	case s == 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", s)
	}
}
