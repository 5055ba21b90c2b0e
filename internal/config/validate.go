package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/sparkline"
)

// Refresh interval bounds. Panels faster than minRefresh flicker and burn CPU;
// slower than maxRefresh the graphs stop reading as live.
const (
	minRefresh     = 100 * time.Millisecond
	maxRefresh     = time.Minute
	maxInfoRefresh = time.Hour
)

// MaxGraphHeight is the tallest graph, in rows, a config may ask for.
const MaxGraphHeight = 16

// ValidProcSorts lists the accepted procs.sort values.
var ValidProcSorts = []string{"cpu", "mem", "pid", "name"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sot only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sot, or lower 'version' in the config file.")
	}

	if err := validateGraph(cfg.Graph); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'graph' section in your config.")
	}

	if err := validateRefresh(cfg.Refresh); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'refresh' section in your config.")
	}

	if strings.TrimSpace(cfg.Disk.Mount) == "" {
		return errors.New(errors.ErrConfig,
			"disk.mount is empty",
			"Set it to a mount point such as '/' or '/home'.")
	}

	if err := validateProcs(cfg.Procs); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'procs' section in your config.")
	}

	if err := validateThresholds(cfg.Thresholds); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'thresholds' section in your config.")
	}

	return nil
}

func validateGraph(g GraphConfig) error {
	if _, err := sparkline.ParseMode(g.Mode); err != nil {
		return fmt.Errorf("graph.mode: %w", err)
	}
	if g.Height < 1 || g.Height > MaxGraphHeight {
		return fmt.Errorf("graph.height must be between 1 and %d, got %d", MaxGraphHeight, g.Height)
	}
	return nil
}

func validateRefresh(r RefreshConfig) error {
	intervals := []struct {
		name string
		val  time.Duration
		max  time.Duration
	}{
		{"cpu", r.CPU, maxRefresh},
		{"memory", r.Memory, maxRefresh},
		{"disk", r.Disk, maxRefresh},
		{"network", r.Network, maxRefresh},
		{"procs", r.Procs, maxRefresh},
		{"connections", r.Connections, maxRefresh},
		{"info", r.Info, maxInfoRefresh},
	}

	for _, iv := range intervals {
		if iv.val < minRefresh || iv.val > iv.max {
			return fmt.Errorf("refresh.%s is %s - keep it between %s and %s", iv.name, iv.val, minRefresh, iv.max)
		}
	}
	return nil
}

func validateProcs(p ProcsConfig) error {
	if p.Max <= 0 {
		return fmt.Errorf("procs.max must be positive, got %d", p.Max)
	}
	for _, s := range ValidProcSorts {
		if p.Sort == s {
			return nil
		}
	}
	return fmt.Errorf("procs.sort '%s' isn't supported - use one of: %s", p.Sort, strings.Join(ValidProcSorts, ", "))
}

func validateThresholds(t ThresholdsConfig) error {
	if t.Warning <= 0 || t.Critical > 100 || t.Warning >= t.Critical {
		return fmt.Errorf("thresholds need 0 < warning < critical <= 100, got warning=%d critical=%d", t.Warning, t.Critical)
	}
	return nil
}
