package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/logger"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/net"
)

// maxTopRemotes caps ConnStats.TopRemotes.
const maxTopRemotes = 3

// counterSample is a cumulative byte counter pair with the time it was read.
type counterSample struct {
	in, out uint64
	at      time.Time
}

// Sampler reads metrics from a Source, keeping the previous counters needed
// for rate calculation.
type Sampler struct {
	src      Source
	log      logger.Logger
	now      func() time.Time
	mount    string
	iface    string
	mu       sync.Mutex // guards prevDisk, prevNet and procs
	prevDisk *counterSample
	prevNet  *counterSample
	procs    map[int32]Proc
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSource replaces the gopsutil-backed source.
func WithSource(src Source) Option {
	return func(s *Sampler) { s.src = src }
}

// WithLogger sets the logger for collection failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Sampler) { s.log = l }
}

// WithClock replaces time.Now, for deterministic rates in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Sampler) { s.now = now }
}

// WithMount selects the filesystem reported by Disk. Defaults to "/".
func WithMount(mount string) Option {
	return func(s *Sampler) { s.mount = mount }
}

// WithInterface limits Network to one NIC. Empty sums all non-loopback NICs.
func WithInterface(name string) Option {
	return func(s *Sampler) { s.iface = name }
}

// NewSampler creates a Sampler reading the local system.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{
		src:   SystemSource(),
		log:   logger.Noop(),
		now:   time.Now,
		mount: "/",
		procs: make(map[int32]Proc),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// collectErr logs and wraps a source failure as a COLLECT error.
func (s *Sampler) collectErr(err error, what string) error {
	s.log.Debug("collect %s: %v", what, err)
	return errors.WrapWithCode(err, errors.ErrCollect,
		"Couldn't read "+what,
		"The panel keeps its last values and retries on the next tick.")
}

// CPU returns total and per-core utilization since the previous call, plus
// load averages and the hottest temperature sensor.
func (s *Sampler) CPU(ctx context.Context) (CPUStats, error) {
	var stats CPUStats

	total, err := s.src.CPUPercent(ctx, false)
	if err != nil {
		return stats, s.collectErr(err, "CPU usage")
	}
	if len(total) > 0 {
		stats.Percent = total[0]
	}

	if perCore, err := s.src.CPUPercent(ctx, true); err == nil {
		stats.PerCore = perCore
	} else {
		s.log.Debug("collect per-core CPU: %v", err)
	}

	if n, err := s.src.CPUCounts(ctx, true); err == nil {
		stats.LogicalCores = n
	}
	if n, err := s.src.CPUCounts(ctx, false); err == nil {
		stats.PhysicalCores = n
	}

	if avg, err := s.src.LoadAvg(ctx); err == nil && avg != nil {
		stats.LoadAvg = [3]float64{avg.Load1, avg.Load5, avg.Load15}
	}

	if info, err := s.src.CPUInfo(ctx); err == nil && len(info) > 0 {
		stats.Model = strings.TrimSpace(info[0].ModelName)
	}

	// Sensors are often missing or partially readable; take what we get.
	if temps, _ := s.src.Temperatures(ctx); len(temps) > 0 {
		for _, t := range temps {
			if t.Temperature > stats.TempCelsius {
				stats.TempCelsius = t.Temperature
			}
		}
	}

	return stats, nil
}

// Memory returns RAM and swap usage.
func (s *Sampler) Memory(ctx context.Context) (MemoryStats, error) {
	var stats MemoryStats

	vm, err := s.src.VirtualMemory(ctx)
	if err != nil {
		return stats, s.collectErr(err, "memory usage")
	}
	stats.UsedBytes = vm.Used
	stats.TotalBytes = vm.Total
	stats.AvailableBytes = vm.Available
	stats.CachedBytes = vm.Cached
	stats.Percent = vm.UsedPercent

	if sw, err := s.src.SwapMemory(ctx); err == nil && sw != nil {
		stats.SwapUsedBytes = sw.Used
		stats.SwapTotalBytes = sw.Total
		stats.SwapPercent = sw.UsedPercent
	} else if err != nil {
		s.log.Debug("collect swap: %v", err)
	}

	return stats, nil
}

// Disk returns usage of the configured mount and I/O throughput across
// physical devices.
func (s *Sampler) Disk(ctx context.Context) (DiskStats, error) {
	stats := DiskStats{Mount: s.mount}

	usage, err := s.src.DiskUsage(ctx, s.mount)
	if err != nil {
		return stats, s.collectErr(err, "disk usage of "+s.mount)
	}
	stats.FSType = usage.Fstype
	stats.UsedBytes = usage.Used
	stats.TotalBytes = usage.Total
	stats.FreeBytes = usage.Free
	stats.Percent = usage.UsedPercent

	counters, err := s.src.DiskIO(ctx)
	if err != nil {
		// Some platforms (containers, BSDs) don't expose I/O counters.
		s.log.Debug("collect disk io: %v", err)
		return stats, nil
	}
	read, write := sumDiskIO(counters)

	s.mu.Lock()
	stats.ReadPerSecond, stats.WritePerSecond = s.rates(&s.prevDisk, read, write)
	s.mu.Unlock()

	return stats, nil
}

// Network returns receive and send throughput.
func (s *Sampler) Network(ctx context.Context) (NetworkStats, error) {
	stats := NetworkStats{Interface: s.iface}

	counters, err := s.src.NetIO(ctx)
	if err != nil {
		return stats, s.collectErr(err, "network counters")
	}

	recv, sent, found := sumNetIO(counters, s.iface)
	if !found {
		return stats, errors.New(errors.ErrCollect,
			fmt.Sprintf("Network interface '%s' not found", s.iface),
			"Check network.interface in your config, or leave it empty to sum all interfaces.")
	}
	stats.BytesRecv = recv
	stats.BytesSent = sent
	if stats.Interface == "" {
		stats.Interface = "all"
	}

	s.mu.Lock()
	stats.RecvPerSecond, stats.SentPerSecond = s.rates(&s.prevNet, recv, sent)
	s.mu.Unlock()

	return stats, nil
}

// rates updates prev with the new counters and returns per-second deltas.
// The first sample, a non-advancing clock, and counter resets all yield 0.
// Caller must hold s.mu.
func (s *Sampler) rates(prev **counterSample, in, out uint64) (inRate, outRate float64) {
	cur := &counterSample{in: in, out: out, at: s.now()}
	last := *prev
	*prev = cur

	if last == nil {
		return 0, 0
	}
	elapsed := cur.at.Sub(last.at).Seconds()
	if elapsed <= 0 {
		return 0, 0
	}
	return delta(last.in, in) / elapsed, delta(last.out, out) / elapsed
}

// delta returns cur-prev, or 0 if the counter went backwards.
func delta(prev, cur uint64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur - prev)
}

// sumDiskIO totals bytes across whole devices, skipping partitions whose
// parent device is also listed so nothing is counted twice.
func sumDiskIO(counters map[string]disk.IOCountersStat) (read, write uint64) {
	for name, c := range counters {
		if isPartition(name, counters) {
			continue
		}
		read += c.ReadBytes
		write += c.WriteBytes
	}
	return read, write
}

// isPartition reports whether name is a partition of another listed device.
// Partitions number the parent directly (sda1 under sda), or after a "p" when
// the parent already ends in a digit (nvme0n1p2 under nvme0n1). So dm-10 is
// not a partition of dm-1, nor sdaa of sda.
func isPartition(name string, counters map[string]disk.IOCountersStat) bool {
	for parent := range counters {
		if parent == name || !strings.HasPrefix(name, parent) {
			continue
		}
		suffix := name[len(parent):]
		if endsInDigit(parent) {
			if !strings.HasPrefix(suffix, "p") {
				continue
			}
			suffix = suffix[1:]
		}
		if isDigits(suffix) {
			return true
		}
	}
	return false
}

func endsInDigit(s string) bool {
	return s != "" && s[len(s)-1] >= '0' && s[len(s)-1] <= '9'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// sumNetIO returns counters for iface, or the sum of all non-loopback
// interfaces when iface is empty. found is false if iface is not listed.
func sumNetIO(counters []net.IOCountersStat, iface string) (recv, sent uint64, found bool) {
	for _, c := range counters {
		if iface != "" {
			if c.Name == iface {
				return c.BytesRecv, c.BytesSent, true
			}
			continue
		}
		if isLoopback(c.Name) {
			continue
		}
		recv += c.BytesRecv
		sent += c.BytesSent
	}
	return recv, sent, iface == ""
}

func isLoopback(name string) bool {
	return name == "lo" || strings.HasPrefix(name, "lo0") || strings.HasPrefix(name, "Loopback")
}

// Connections counts inet sockets by state.
func (s *Sampler) Connections(ctx context.Context) (ConnStats, error) {
	var stats ConnStats

	conns, err := s.src.Connections(ctx)
	if err != nil {
		return stats, s.collectErr(err, "network connections")
	}

	ports := make(map[uint32]struct{})
	hosts := make(map[string]struct{})
	remotes := make(map[string]struct{})

	for _, c := range conns {
		switch c.Status {
		case "ESTABLISHED":
			stats.Established++
			if c.Raddr.IP != "" {
				hosts[c.Raddr.IP] = struct{}{}
				remotes[fmt.Sprintf("%s:%d", c.Raddr.IP, c.Raddr.Port)] = struct{}{}
			}
		case "LISTEN":
			stats.Listen++
		case "TIME_WAIT":
			stats.TimeWait++
		}
		if c.Laddr.Port != 0 {
			ports[c.Laddr.Port] = struct{}{}
		}
	}

	stats.LocalPorts = len(ports)
	stats.RemoteHosts = len(hosts)

	top := make([]string, 0, len(remotes))
	for r := range remotes {
		top = append(top, r)
	}
	sort.Strings(top)
	if len(top) > maxTopRemotes {
		top = top[:maxTopRemotes]
	}
	stats.TopRemotes = top

	return stats, nil
}

// Info returns host identification and uptime.
func (s *Sampler) Info(ctx context.Context) (HostInfo, error) {
	info, err := s.src.HostInfo(ctx)
	if err != nil {
		return HostInfo{}, s.collectErr(err, "host info")
	}

	platform := info.Platform
	if info.PlatformVersion != "" {
		platform += " " + info.PlatformVersion
	}

	return HostInfo{
		Hostname: info.Hostname,
		Platform: strings.TrimSpace(platform),
		Kernel:   info.KernelVersion,
		Arch:     info.KernelArch,
		Uptime:   time.Duration(info.Uptime) * time.Second,
	}, nil
}
