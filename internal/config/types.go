package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete sot configuration file.
type Config struct {
	Version    int              `yaml:"version" mapstructure:"version"`
	Graph      GraphConfig      `yaml:"graph" mapstructure:"graph"`
	Refresh    RefreshConfig    `yaml:"refresh" mapstructure:"refresh"`
	Disk       DiskConfig       `yaml:"disk" mapstructure:"disk"`
	Network    NetworkConfig    `yaml:"network" mapstructure:"network"`
	Procs      ProcsConfig      `yaml:"procs" mapstructure:"procs"`
	Thresholds ThresholdsConfig `yaml:"thresholds" mapstructure:"thresholds"`
}

// GraphConfig controls how sparklines are drawn.
type GraphConfig struct {
	// Mode is the glyph mode: "braille" or "block".
	Mode string `yaml:"mode" mapstructure:"mode"`

	// Height is the number of terminal rows per graph.
	Height int `yaml:"height" mapstructure:"height"`

	// Color toggles threshold coloring of graphs and bars.
	Color bool `yaml:"color" mapstructure:"color"`
}

// RefreshConfig holds the sampling cadence of each panel.
type RefreshConfig struct {
	CPU         time.Duration `yaml:"cpu" mapstructure:"cpu"`
	Memory      time.Duration `yaml:"memory" mapstructure:"memory"`
	Disk        time.Duration `yaml:"disk" mapstructure:"disk"`
	Network     time.Duration `yaml:"network" mapstructure:"network"`
	Procs       time.Duration `yaml:"procs" mapstructure:"procs"`
	Connections time.Duration `yaml:"connections" mapstructure:"connections"`
	Info        time.Duration `yaml:"info" mapstructure:"info"`
}

// DiskConfig selects the filesystem shown in the disk panel.
type DiskConfig struct {
	// Mount is the mount point whose usage is reported. Supports ~ and ${HOME}.
	Mount string `yaml:"mount" mapstructure:"mount"`
}

// NetworkConfig selects the interface shown in the network panel.
type NetworkConfig struct {
	// Interface limits throughput to one NIC. Empty sums all non-loopback NICs.
	Interface string `yaml:"interface" mapstructure:"interface"`
}

// ProcsConfig controls the process table.
type ProcsConfig struct {
	// Max caps how many processes are listed.
	Max int `yaml:"max" mapstructure:"max"`

	// Sort is the initial sort key: "cpu", "mem", "pid" or "name".
	Sort string `yaml:"sort" mapstructure:"sort"`
}

// ThresholdsConfig holds the percentages where colors switch to warning and critical.
type ThresholdsConfig struct {
	Warning  int `yaml:"warning" mapstructure:"warning"`
	Critical int `yaml:"critical" mapstructure:"critical"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Graph: GraphConfig{
			Mode:   "braille",
			Height: 4,
			Color:  true,
		},
		Refresh: RefreshConfig{
			CPU:         time.Second,
			Memory:      2 * time.Second,
			Disk:        2 * time.Second,
			Network:     2 * time.Second,
			Procs:       6 * time.Second,
			Connections: 3 * time.Second,
			Info:        time.Minute,
		},
		Disk: DiskConfig{
			Mount: "/",
		},
		Procs: ProcsConfig{
			Max:  1000,
			Sort: "cpu",
		},
		Thresholds: ThresholdsConfig{
			Warning:  70,
			Critical: 90,
		},
	}
}
