package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sot/internal/util"
)

var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Width(10)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary)
)

// detailChromeRows covers the detail header and footer lines.
const detailChromeRows = 4

// resizeViewport creates or resizes the detail viewport.
func (m *Model) resizeViewport() {
	h := max(m.height-detailChromeRows, 1)
	w := max(m.width-panelChrome, 1)

	if !m.viewportReady {
		m.detailViewport = viewport.New(w, h)
		m.detailViewport.YPosition = 2
		m.viewportReady = true
	} else {
		m.detailViewport.Width = w
		m.detailViewport.Height = h
	}

	if m.viewMode == ViewDetail {
		m.updateDetailViewportContent()
	}
}

// updateDetailViewportContent refreshes the detail text. The PID is pinned
// when the view opens so refreshes that reorder the table keep showing the
// same process.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		m.resizeViewport()
	}
	m.detailViewport.SetContent(m.renderDetailContent())
}

// renderDetailContent lists every field of the pinned process.
func (m Model) renderDetailContent() string {
	p, ok := m.processByPID(m.detailPID)
	if !ok {
		return MutedStyle.Render(fmt.Sprintf("Process %d has exited.", m.detailPID))
	}

	row := func(label, value string) string {
		return detailLabelStyle.Render(label) + detailValueStyle.Render(value)
	}

	lines := []string{
		row("PID", fmt.Sprint(p.PID)),
		row("Name", p.Name),
		row("User", p.User),
		row("Status", p.Status),
		row("Threads", fmt.Sprintf("%d %s", p.Threads, util.Pluralize(int(p.Threads), "thread", "threads"))),
		row("CPU", fmt.Sprintf("%.1f%%", p.CPUPercent)),
		row("Memory", fmt.Sprintf("%.1f%% (%s RSS)", p.MemPercent, formatBytes(p.RSSBytes))),
		"",
		LabelStyle.Render("Command"),
	}

	cmd := p.Command
	if cmd == "" {
		cmd = MutedStyle.Render("(unavailable)")
	}
	lines = append(lines, lipgloss.NewStyle().Width(max(m.detailViewport.Width, 20)).Render(cmd))

	return strings.Join(lines, "\n")
}

// renderDetailView renders the scrollable process detail screen.
func (m Model) renderDetailView() string {
	title := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render("sot")
	name := ""
	if p, ok := m.processByPID(m.detailPID); ok {
		name = p.Name
	}
	header := HeaderStyle.MaxWidth(m.width).Render(
		title + LabelStyle.Render(fmt.Sprintf(" | process %d %s", m.detailPID, name)))

	hints := "esc back | ↑↓ scroll | t terminate | K kill | q quit"
	footer := FooterStyle.MaxWidth(m.width).Render(hints)
	if m.status != "" && m.now().Before(m.statusUntil) {
		style := LabelStyle
		if m.statusIsErr {
			style = ErrorStyle
		}
		footer = FooterStyle.MaxWidth(m.width).Render(style.Render(m.status))
	}

	body := PanelStyle.Width(max(m.width-2, 1)).Render(m.detailViewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
