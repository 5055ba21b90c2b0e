package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sot/internal/config"
	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/logger"
	"github.com/rileyhilliard/sot/internal/metrics"
	"github.com/rileyhilliard/sot/internal/sparkline"
)

// Sampler is the metrics source the dashboard polls. *metrics.Sampler
// implements it.
type Sampler interface {
	CPU(ctx context.Context) (metrics.CPUStats, error)
	Memory(ctx context.Context) (metrics.MemoryStats, error)
	Disk(ctx context.Context) (metrics.DiskStats, error)
	Network(ctx context.Context) (metrics.NetworkStats, error)
	Connections(ctx context.Context) (metrics.ConnStats, error)
	Processes(ctx context.Context, limit int) ([]metrics.ProcessInfo, error)
	Info(ctx context.Context) (metrics.HostInfo, error)
	Terminate(ctx context.Context, pid int32) error
	Kill(ctx context.Context, pid int32) error
}

var _ Sampler = (*metrics.Sampler)(nil)

// panel identifies an independently refreshed part of the dashboard.
type panel int

const (
	panelCPU panel = iota
	panelMemory
	panelDisk
	panelNetwork
	panelConnections
	panelProcesses
	panelInfo
)

var allPanels = []panel{
	panelCPU, panelMemory, panelDisk, panelNetwork,
	panelConnections, panelProcesses, panelInfo,
}

func (p panel) String() string {
	switch p {
	case panelCPU:
		return "cpu"
	case panelMemory:
		return "memory"
	case panelDisk:
		return "disk"
	case panelNetwork:
		return "network"
	case panelConnections:
		return "connections"
	case panelProcesses:
		return "procs"
	case panelInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Width breakpoint below which panels stack in a single column.
const BreakpointCompact = 80

// statusDuration is how long an action result stays in the footer.
const statusDuration = 4 * time.Second

// signalTimeout bounds a terminate or kill request.
const signalTimeout = 2 * time.Second

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	sampler Sampler
	log     logger.Logger
	now     func() time.Time

	intervals   map[panel]time.Duration
	mode        sparkline.Mode
	graphHeight int
	color       bool
	warning     int
	critical    int
	procLimit   int
	procSort    metrics.ProcessSort

	cpuSeries *series
	memSeries *series
	diskRead  *series
	diskWrite *series
	netRecv   *series
	netSent   *series

	cpu   *metrics.CPUStats
	mem   *metrics.MemoryStats
	disk  *metrics.DiskStats
	net   *metrics.NetworkStats
	conns *metrics.ConnStats
	info  *metrics.HostInfo

	// sampled is the full process list; procs is the sorted, limited slice
	// shown in the table.
	sampled []metrics.ProcessInfo
	procs   []metrics.ProcessInfo

	// Last error per panel, cleared on the next successful sample.
	errs map[panel]string

	procTable      table.Model
	help           help.Model
	detailViewport viewport.Model
	viewportReady  bool
	detailPID      int32

	width       int
	height      int
	lastUpdate  time.Time
	status      string
	statusIsErr bool
	statusUntil time.Time
	quitting    bool
	showHelp    bool
	viewMode    ViewMode
}

// tickMsg schedules the next sample of one panel.
type tickMsg struct {
	panel panel
}

type cpuMsg struct {
	stats metrics.CPUStats
	err   error
}

type memoryMsg struct {
	stats metrics.MemoryStats
	err   error
}

type diskMsg struct {
	stats metrics.DiskStats
	err   error
}

type networkMsg struct {
	stats metrics.NetworkStats
	err   error
}

type connMsg struct {
	stats metrics.ConnStats
	err   error
}

type procsMsg struct {
	procs []metrics.ProcessInfo
	err   error
}

type infoMsg struct {
	info metrics.HostInfo
	err  error
}

// NewModel creates a dashboard reading from sampler with settings from cfg.
func NewModel(sampler Sampler, cfg *config.Config, log logger.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Noop()
	}

	mode, err := sparkline.ParseMode(cfg.Graph.Mode)
	if err != nil {
		log.Warn("%v, using %s", err, mode)
	}
	procSort, err := metrics.ParseProcessSort(cfg.Procs.Sort)
	if err != nil {
		log.Warn("%v, using %s", err, procSort)
	}

	height := cfg.Graph.Height
	if height < 1 {
		height = 1
	}

	m := Model{
		sampler: sampler,
		log:     log,
		now:     time.Now,
		intervals: map[panel]time.Duration{
			panelCPU:         cfg.Refresh.CPU,
			panelMemory:      cfg.Refresh.Memory,
			panelDisk:        cfg.Refresh.Disk,
			panelNetwork:     cfg.Refresh.Network,
			panelConnections: cfg.Refresh.Connections,
			panelProcesses:   cfg.Refresh.Procs,
			panelInfo:        cfg.Refresh.Info,
		},
		mode:        mode,
		graphHeight: height,
		color:       cfg.Graph.Color,
		warning:     cfg.Thresholds.Warning,
		critical:    cfg.Thresholds.Critical,
		procLimit:   cfg.Procs.Max,
		procSort:    procSort,

		cpuSeries: newPercentSeries(),
		memSeries: newPercentSeries(),
		diskRead:  newRateSeries(false),
		diskWrite: newRateSeries(true),
		netRecv:   newRateSeries(false),
		netSent:   newRateSeries(true),

		errs:      make(map[panel]string),
		procTable: newProcessTable(),
		help:      help.New(),
	}

	return m
}

// Init samples every panel once and starts their ticks.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2*len(allPanels))
	for _, p := range allPanels {
		cmds = append(cmds, m.collectCmd(p), m.tickCmd(p))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeSeries()
		m.resizeProcessTable()
		m.resizeViewport()

	case tickMsg:
		return m, tea.Batch(m.collectCmd(msg.panel), m.tickCmd(msg.panel))

	case cpuMsg:
		if m.recordErr(panelCPU, msg.err) {
			return m, nil
		}
		m.cpu = &msg.stats
		m.pushSample("cpu", m.cpuSeries, msg.stats.Percent)

	case memoryMsg:
		if m.recordErr(panelMemory, msg.err) {
			return m, nil
		}
		m.mem = &msg.stats
		m.pushSample("memory", m.memSeries, msg.stats.Percent)

	case diskMsg:
		if m.recordErr(panelDisk, msg.err) {
			return m, nil
		}
		m.disk = &msg.stats
		m.pushSample("disk read", m.diskRead, msg.stats.ReadPerSecond)
		m.pushSample("disk write", m.diskWrite, msg.stats.WritePerSecond)

	case networkMsg:
		if m.recordErr(panelNetwork, msg.err) {
			return m, nil
		}
		m.net = &msg.stats
		m.pushSample("net recv", m.netRecv, msg.stats.RecvPerSecond)
		m.pushSample("net sent", m.netSent, msg.stats.SentPerSecond)

	case connMsg:
		if m.recordErr(panelConnections, msg.err) {
			return m, nil
		}
		m.conns = &msg.stats

	case procsMsg:
		if m.recordErr(panelProcesses, msg.err) {
			return m, nil
		}
		m.setProcesses(msg.procs)
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case infoMsg:
		if m.recordErr(panelInfo, msg.err) {
			return m, nil
		}
		m.info = &msg.info

	case actionMsg:
		m.handleActionResult(msg)
		return m, m.collectCmd(panelProcesses)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Starting sot..."
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderDashboard()
}

// recordErr stores err for p and reports whether there was one. A nil err
// clears the panel's previous error and stamps the update time.
func (m *Model) recordErr(p panel, err error) bool {
	if err != nil {
		m.errs[p] = errors.Summary(err)
		m.log.Debug("%s sample failed: %v", p, err)
		return true
	}
	delete(m.errs, p)
	m.lastUpdate = m.now()
	return false
}

// tickCmd returns a command that sends a tick after the panel's interval.
func (m Model) tickCmd(p panel) tea.Cmd {
	interval := m.intervals[p]
	if interval <= 0 {
		interval = time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{panel: p}
	})
}

// collectCmd samples one panel in the background. Collection is bounded by
// the panel's interval so a hung syscall can't pile up requests.
func (m Model) collectCmd(p panel) tea.Cmd {
	sampler := m.sampler
	if sampler == nil {
		return nil
	}
	timeout := m.intervals[p]
	if timeout < time.Second {
		timeout = time.Second
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		switch p {
		case panelCPU:
			s, err := sampler.CPU(ctx)
			return cpuMsg{stats: s, err: err}
		case panelMemory:
			s, err := sampler.Memory(ctx)
			return memoryMsg{stats: s, err: err}
		case panelDisk:
			s, err := sampler.Disk(ctx)
			return diskMsg{stats: s, err: err}
		case panelNetwork:
			s, err := sampler.Network(ctx)
			return networkMsg{stats: s, err: err}
		case panelConnections:
			s, err := sampler.Connections(ctx)
			return connMsg{stats: s, err: err}
		case panelProcesses:
			procs, err := sampler.Processes(ctx, 0)
			return procsMsg{procs: procs, err: err}
		case panelInfo:
			info, err := sampler.Info(ctx)
			return infoMsg{info: info, err: err}
		}
		return nil
	}
}

// collectAllCmd refreshes every panel immediately.
func (m Model) collectAllCmd() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(allPanels))
	for _, p := range allPanels {
		cmds = append(cmds, m.collectCmd(p))
	}
	return tea.Batch(cmds...)
}

// setStatus shows a transient footer message.
func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusIsErr = isErr
	m.statusUntil = m.now().Add(statusDuration)
}

// Mode returns the current glyph mode.
func (m Model) Mode() sparkline.Mode { return m.mode }

// ProcessSort returns the current process ordering.
func (m Model) ProcessSort() metrics.ProcessSort { return m.procSort }

// LastError returns the last collection error of a panel, if any.
func (m Model) LastError(name string) string {
	for p, e := range m.errs {
		if p.String() == name {
			return e
		}
	}
	return ""
}
