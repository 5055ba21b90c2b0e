package metrics

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Proc is the subset of *process.Process the sampler needs.
type Proc interface {
	NameWithContext(ctx context.Context) (string, error)
	UsernameWithContext(ctx context.Context) (string, error)
	CmdlineWithContext(ctx context.Context) (string, error)
	StatusWithContext(ctx context.Context) ([]string, error)
	NumThreadsWithContext(ctx context.Context) (int32, error)
	MemoryInfoWithContext(ctx context.Context) (*process.MemoryInfoStat, error)
	MemoryPercentWithContext(ctx context.Context) (float32, error)
	PercentWithContext(ctx context.Context, interval time.Duration) (float64, error)
	TerminateWithContext(ctx context.Context) error
	KillWithContext(ctx context.Context) error
}

var _ Proc = (*process.Process)(nil)

// Source holds the functions the sampler reads the system through.
// Tests replace individual fields with fakes.
type Source struct {
	CPUPercent   func(ctx context.Context, perCPU bool) ([]float64, error)
	CPUCounts    func(ctx context.Context, logical bool) (int, error)
	CPUInfo      func(ctx context.Context) ([]cpu.InfoStat, error)
	LoadAvg      func(ctx context.Context) (*load.AvgStat, error)
	Temperatures func(ctx context.Context) ([]host.TemperatureStat, error)

	VirtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	SwapMemory    func(ctx context.Context) (*mem.SwapMemoryStat, error)

	DiskUsage func(ctx context.Context, path string) (*disk.UsageStat, error)
	DiskIO    func(ctx context.Context) (map[string]disk.IOCountersStat, error)

	NetIO       func(ctx context.Context) ([]net.IOCountersStat, error)
	Connections func(ctx context.Context) ([]net.ConnectionStat, error)

	Pids    func(ctx context.Context) ([]int32, error)
	NewProc func(ctx context.Context, pid int32) (Proc, error)

	HostInfo func(ctx context.Context) (*host.InfoStat, error)
}

// SystemSource returns a Source backed by gopsutil.
func SystemSource() Source {
	return Source{
		CPUPercent: func(ctx context.Context, perCPU bool) ([]float64, error) {
			// Zero interval compares against the previous call.
			return cpu.PercentWithContext(ctx, 0, perCPU)
		},
		CPUCounts:    cpu.CountsWithContext,
		CPUInfo:      cpu.InfoWithContext,
		LoadAvg:      load.AvgWithContext,
		Temperatures: host.SensorsTemperaturesWithContext,

		VirtualMemory: mem.VirtualMemoryWithContext,
		SwapMemory:    mem.SwapMemoryWithContext,

		DiskUsage: disk.UsageWithContext,
		DiskIO: func(ctx context.Context) (map[string]disk.IOCountersStat, error) {
			return disk.IOCountersWithContext(ctx)
		},

		NetIO: func(ctx context.Context) ([]net.IOCountersStat, error) {
			return net.IOCountersWithContext(ctx, true)
		},
		Connections: func(ctx context.Context) ([]net.ConnectionStat, error) {
			return net.ConnectionsWithContext(ctx, "inet")
		},

		Pids: process.PidsWithContext,
		NewProc: func(ctx context.Context, pid int32) (Proc, error) {
			return process.NewProcessWithContext(ctx, pid)
		},

		HostInfo: host.InfoWithContext,
	}
}
