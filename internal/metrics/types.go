package metrics

import "time"

// CPUStats contains CPU usage information.
type CPUStats struct {
	Percent       float64
	PerCore       []float64
	PhysicalCores int
	LogicalCores  int
	LoadAvg       [3]float64
	Model         string
	// TempCelsius is the hottest sensor reading, or 0 if no sensors are available.
	TempCelsius float64
}

// MemoryStats contains memory usage information.
type MemoryStats struct {
	UsedBytes      uint64
	TotalBytes     uint64
	AvailableBytes uint64
	CachedBytes    uint64
	Percent        float64
	SwapUsedBytes  uint64
	SwapTotalBytes uint64
	SwapPercent    float64
}

// DiskStats contains usage and throughput for the configured mount.
type DiskStats struct {
	Mount          string
	FSType         string
	UsedBytes      uint64
	TotalBytes     uint64
	FreeBytes      uint64
	Percent        float64
	ReadPerSecond  float64
	WritePerSecond float64
}

// NetworkStats contains throughput for one interface or the sum of all
// non-loopback interfaces.
type NetworkStats struct {
	Interface     string
	RecvPerSecond float64
	SentPerSecond float64
	BytesRecv     uint64
	BytesSent     uint64
}

// ConnStats summarizes inet sockets by state.
type ConnStats struct {
	Established int
	Listen      int
	TimeWait    int
	LocalPorts  int
	RemoteHosts int
	// TopRemotes lists up to three established remote endpoints as host:port.
	TopRemotes []string
}

// ProcessInfo contains information about a running process.
type ProcessInfo struct {
	PID        int32
	Name       string
	User       string
	Command    string
	Status     string
	Threads    int32
	RSSBytes   uint64
	CPUPercent float64
	MemPercent float32
}

// HostInfo contains general system information.
type HostInfo struct {
	Hostname string
	Platform string
	Kernel   string
	Arch     string
	Uptime   time.Duration
}
