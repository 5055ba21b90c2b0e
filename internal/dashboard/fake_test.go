package dashboard

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sot/internal/config"
	"github.com/rileyhilliard/sot/internal/logger"
	"github.com/rileyhilliard/sot/internal/metrics"
)

var errBoom = stderrors.New("boom")

// fakeSampler returns canned stats and records signals.
type fakeSampler struct {
	mu         sync.Mutex
	cpu        metrics.CPUStats
	procs      []metrics.ProcessInfo
	err        error
	terminated []int32
	killed     []int32
}

func (f *fakeSampler) CPU(context.Context) (metrics.CPUStats, error) { return f.cpu, f.err }
func (f *fakeSampler) Memory(context.Context) (metrics.MemoryStats, error) {
	return metrics.MemoryStats{Percent: 50, UsedBytes: 1 << 30, TotalBytes: 2 << 30}, f.err
}
func (f *fakeSampler) Disk(context.Context) (metrics.DiskStats, error) {
	return metrics.DiskStats{Mount: "/", Percent: 20}, f.err
}
func (f *fakeSampler) Network(context.Context) (metrics.NetworkStats, error) {
	return metrics.NetworkStats{Interface: "all", RecvPerSecond: 2048}, f.err
}
func (f *fakeSampler) Connections(context.Context) (metrics.ConnStats, error) {
	return metrics.ConnStats{Established: 3, Listen: 2}, f.err
}
func (f *fakeSampler) Processes(context.Context, int) ([]metrics.ProcessInfo, error) {
	return f.procs, f.err
}
func (f *fakeSampler) Info(context.Context) (metrics.HostInfo, error) {
	return metrics.HostInfo{Hostname: "testbox", Platform: "linux", Uptime: 90 * time.Minute}, f.err
}

func (f *fakeSampler) Terminate(_ context.Context, pid int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = append(f.terminated, pid)
	return f.err
}

func (f *fakeSampler) Kill(_ context.Context, pid int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.killed = append(f.killed, pid)
	return f.err
}

var testProcs = []metrics.ProcessInfo{
	{PID: 10, Name: "idle", User: "me", CPUPercent: 0.5, RSSBytes: 1 << 20},
	{PID: 20, Name: "busy", User: "me", CPUPercent: 80, RSSBytes: 4 << 20, Threads: 4, Command: "busy --forever"},
	{PID: 30, Name: "db", User: "pg", CPUPercent: 10, RSSBytes: 64 << 20},
}

// newTestModel returns a model sized to width x height with a fixed clock.
func newTestModel(f *fakeSampler, width, height int) Model {
	cfg := config.DefaultConfig()
	m := NewModel(f, cfg, logger.NewBufferLogger())
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }
	return update(m, tea.WindowSizeMsg{Width: width, Height: height})
}

// update applies msg and returns the concrete model.
func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
