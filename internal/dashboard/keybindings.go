package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewDetail
)

// keyMap holds every dashboard binding. It satisfies help.KeyMap.
type keyMap struct {
	Quit      key.Binding
	Refresh   key.Binding
	Mode      key.Binding
	Sort      key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Detail    key.Binding
	Back      key.Binding
	Terminate key.Binding
	Kill      key.Binding
	Help      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "braille/block"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home", "first process"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end", "last process"),
	),
	Detail: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Terminate: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "terminate"),
	),
	Kill: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "kill"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Mode, k.Sort, k.Detail, k.Help}
}

// FullHelp is shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Refresh, k.Mode, k.Sort, k.Help},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Detail, k.Back, k.Terminate, k.Kill},
	}
}

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key.Matches(msg, keys.Back) {
		m.showHelp = false
		return true, nil
	}

	if key.Matches(msg, keys.Quit) {
		m.quitting = true
		return true, tea.Quit
	}

	if m.viewMode == ViewDetail {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Refresh):
		return true, m.collectAllCmd()

	case key.Matches(msg, keys.Mode):
		m.mode = m.mode.Next()
		m.resizeSeries()
		return true, nil

	case key.Matches(msg, keys.Sort):
		pid, ok := m.selectedPID()
		m.procSort = m.procSort.Next()
		m.applyProcesses(pid, ok)
		return true, nil

	case key.Matches(msg, keys.Up):
		m.procTable.MoveUp(1)
		return true, nil

	case key.Matches(msg, keys.Down):
		m.procTable.MoveDown(1)
		return true, nil

	case key.Matches(msg, keys.PageUp):
		m.procTable.MoveUp(m.pageSize())
		return true, nil

	case key.Matches(msg, keys.PageDown):
		m.procTable.MoveDown(m.pageSize())
		return true, nil

	case key.Matches(msg, keys.Home):
		m.procTable.GotoTop()
		return true, nil

	case key.Matches(msg, keys.End):
		m.procTable.GotoBottom()
		return true, nil

	case key.Matches(msg, keys.Detail):
		if p, ok := m.SelectedProcess(); ok {
			m.viewMode = ViewDetail
			m.detailPID = p.PID
			m.updateDetailViewportContent()
			m.detailViewport.GotoTop()
		}
		return true, nil

	case key.Matches(msg, keys.Terminate):
		return true, m.signalCmd(actionTerminate)

	case key.Matches(msg, keys.Kill):
		return true, m.signalCmd(actionKill)
	}

	return false, nil
}

// handleDetailKey routes keys in the detail view. Esc returns to the
// dashboard, signals still apply, and navigation scrolls the viewport.
func (m *Model) handleDetailKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.viewMode = ViewDashboard
		return true, nil
	case key.Matches(msg, keys.Terminate):
		return true, m.signalCmd(actionTerminate)
	case key.Matches(msg, keys.Kill):
		return true, m.signalCmd(actionKill)
	case key.Matches(msg, keys.Up, keys.Down, keys.PageUp, keys.PageDown):
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return true, cmd
	}
	return false, nil
}
