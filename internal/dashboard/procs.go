package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/metrics"
	"github.com/rileyhilliard/sot/internal/ui"
)

// action is a signal sent to the selected process.
type action int

const (
	actionTerminate action = iota
	actionKill
)

func (a action) String() string {
	if a == actionKill {
		return "kill"
	}
	return "terminate"
}

// actionMsg reports the result of a terminate or kill request.
type actionMsg struct {
	action action
	pid    int32
	name   string
	err    error
}

// Fixed process table column widths. NAME takes the remaining space.
const (
	colPID     = 7
	colUser    = 10
	colCPU     = 6
	colMem     = 6
	colRSS     = 9
	colThreads = 4
	colStatus  = 8
	minColName = 10
	// bubbles/table pads every cell by one column on each side
	cellPadding = 2
)

func newProcessTable() table.Model {
	return ui.NewTable(processColumns(BreakpointCompact), minTableRows)
}

// processColumns lays out the table for an outer width. Narrow terminals drop
// the user, thread and status columns.
func processColumns(width int) []ui.TableColumn {
	wide := width >= BreakpointCompact

	cols := []ui.TableColumn{{Title: "PID", Width: colPID}}
	if wide {
		cols = append(cols, ui.TableColumn{Title: "USER", Width: colUser})
	}
	cols = append(cols,
		ui.TableColumn{Title: "CPU%", Width: colCPU},
		ui.TableColumn{Title: "MEM%", Width: colMem},
		ui.TableColumn{Title: "RSS", Width: colRSS},
	)
	if wide {
		cols = append(cols,
			ui.TableColumn{Title: "THR", Width: colThreads},
			ui.TableColumn{Title: "STATUS", Width: colStatus},
		)
	}

	used := 0
	for _, c := range cols {
		used += c.Width + cellPadding
	}
	// outer border of the table panel
	nameWidth := width - panelChrome - used - cellPadding
	if nameWidth < minColName {
		nameWidth = minColName
	}
	return append(cols, ui.TableColumn{Title: "NAME", Width: nameWidth})
}

// processRow formats p for the current column set.
func processRow(p metrics.ProcessInfo, wide bool) table.Row {
	row := table.Row{strconv.Itoa(int(p.PID))}
	if wide {
		row = append(row, p.User)
	}
	row = append(row,
		fmt.Sprintf("%.1f", p.CPUPercent),
		fmt.Sprintf("%.1f", p.MemPercent),
		formatBytes(p.RSSBytes),
	)
	if wide {
		row = append(row, strconv.Itoa(int(p.Threads)), p.Status)
	}
	return append(row, p.Name)
}

// setProcesses stores a fresh sample, keeping the cursor on the process
// that was selected before it arrived.
func (m *Model) setProcesses(procs []metrics.ProcessInfo) {
	pid, ok := m.selectedPID()
	m.sampled = procs
	m.applyProcesses(pid, ok)
}

// applyProcesses sorts the last sample, cuts it to the process limit and
// refreshes the table. When keep is set the cursor follows pid.
func (m *Model) applyProcesses(pid int32, keep bool) {
	procs := append([]metrics.ProcessInfo(nil), m.sampled...)
	metrics.SortProcesses(procs, m.procSort)
	if m.procLimit > 0 && len(procs) > m.procLimit {
		procs = procs[:m.procLimit]
	}
	m.procs = procs

	wide := m.width >= BreakpointCompact || m.width == 0
	rows := make([]table.Row, len(procs))
	cursor := 0
	for i, p := range procs {
		rows[i] = processRow(p, wide)
		if keep && p.PID == pid {
			cursor = i
		}
	}

	m.procTable.SetRows(rows)
	if len(rows) > 0 {
		m.procTable.SetCursor(cursor)
	}
}

// resizeProcessTable refits columns and height to the terminal.
func (m *Model) resizeProcessTable() {
	pid, ok := m.selectedPID()
	// Columns and rows must agree on length, so clear rows before switching
	// column sets.
	m.procTable.SetRows(nil)
	m.procTable.SetColumns(ui.ToTableColumns(processColumns(m.width)))
	m.procTable.SetWidth(m.width - panelChrome)
	m.procTable.SetHeight(m.tableRows() + 1)
	m.applyProcesses(pid, ok)
}

// pageSize is the distance moved by page up and page down.
func (m Model) pageSize() int {
	if n := m.tableRows(); n > 1 {
		return n - 1
	}
	return 1
}

// SelectedProcess returns the process under the table cursor.
func (m Model) SelectedProcess() (metrics.ProcessInfo, bool) {
	i := m.procTable.Cursor()
	if i < 0 || i >= len(m.procs) {
		return metrics.ProcessInfo{}, false
	}
	return m.procs[i], true
}

func (m Model) selectedPID() (int32, bool) {
	p, ok := m.SelectedProcess()
	return p.PID, ok
}

// signalCmd sends a to the selected process in the background. In the detail
// view the process being shown is the target.
func (m *Model) signalCmd(a action) tea.Cmd {
	target, ok := m.SelectedProcess()
	if m.viewMode == ViewDetail {
		target, ok = m.processByPID(m.detailPID)
	}
	if !ok || m.sampler == nil {
		return nil
	}

	sampler := m.sampler
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), signalTimeout)
		defer cancel()

		var err error
		if a == actionKill {
			err = sampler.Kill(ctx, target.PID)
		} else {
			err = sampler.Terminate(ctx, target.PID)
		}
		return actionMsg{action: a, pid: target.PID, name: target.Name, err: err}
	}
}

// handleActionResult reports a signal result in the footer.
func (m *Model) handleActionResult(msg actionMsg) {
	if msg.err != nil {
		m.log.Debug("%s %d failed: %v", msg.action, msg.pid, msg.err)
		m.setStatus(errors.Summary(msg.err), true)
		return
	}
	m.setStatus(fmt.Sprintf("sent %s to %s (%d)", msg.action, msg.name, msg.pid), false)
}

// processByPID looks up a process in the last sample, including ones past
// the process limit.
func (m Model) processByPID(pid int32) (metrics.ProcessInfo, bool) {
	for _, p := range m.sampled {
		if p.PID == pid {
			return p, true
		}
	}
	return metrics.ProcessInfo{}, false
}
