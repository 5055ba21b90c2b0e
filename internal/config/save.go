package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sot/internal/errors"
	"gopkg.in/yaml.v3"
)

// header is written above the generated YAML.
const header = `# sot configuration
# Durations use Go syntax (500ms, 2s, 1m). Any key can be overridden with an
# environment variable, e.g. SOT_GRAPH_MODE=block or SOT_REFRESH_CPU=500ms.
`

// Marshal renders cfg as commented YAML.
func Marshal(cfg *Config) ([]byte, error) {
	// yaml.v3 would encode time.Duration as nanoseconds; encode durations as strings.
	doc := struct {
		Version    int               `yaml:"version"`
		Graph      GraphConfig       `yaml:"graph"`
		Refresh    map[string]string `yaml:"refresh"`
		Disk       DiskConfig        `yaml:"disk"`
		Network    NetworkConfig     `yaml:"network"`
		Procs      ProcsConfig       `yaml:"procs"`
		Thresholds ThresholdsConfig  `yaml:"thresholds"`
	}{
		Version: cfg.Version,
		Graph:   cfg.Graph,
		Refresh: map[string]string{
			"cpu":         cfg.Refresh.CPU.String(),
			"memory":      cfg.Refresh.Memory.String(),
			"disk":        cfg.Refresh.Disk.String(),
			"network":     cfg.Refresh.Network.String(),
			"procs":       cfg.Refresh.Procs.String(),
			"connections": cfg.Refresh.Connections.String(),
			"info":        cfg.Refresh.Info.String(),
		},
		Disk:       cfg.Disk,
		Network:    cfg.Network,
		Procs:      cfg.Procs,
		Thresholds: cfg.Thresholds,
	}

	body, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return append([]byte(header), body...), nil
}

// Save validates cfg and writes it to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't encode the config",
			"This is a bug - please report it.")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory "+filepath.Dir(path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write config file "+path,
			"Check file permissions")
	}
	return nil
}
