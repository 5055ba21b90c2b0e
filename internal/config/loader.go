package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".sot.yaml"
	// GlobalConfigDir is the directory for the user config, relative to $HOME.
	GlobalConfigDir = ".config/sot"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SOT_GRAPH_MODE=block.
	EnvPrefix = "SOT"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'sot init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sot.yaml in the current directory
// 3. ~/.config/sot/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if global := GlobalPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// GlobalPath returns ~/.config/sot/config.yaml, or "" if $HOME is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadOrDefault loads config from the found path, or returns defaults with
// environment overrides applied if no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper returns a viper instance with defaults and SOT_* env overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	// Unmarshal decodes duration strings like "2s" via viper's default hooks.
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.Disk.Mount = ExpandTilde(Expand(cfg.Disk.Mount))

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it even when
// the file omits the key.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("graph.mode", d.Graph.Mode)
	v.SetDefault("graph.height", d.Graph.Height)
	v.SetDefault("graph.color", d.Graph.Color)
	v.SetDefault("refresh.cpu", d.Refresh.CPU.String())
	v.SetDefault("refresh.memory", d.Refresh.Memory.String())
	v.SetDefault("refresh.disk", d.Refresh.Disk.String())
	v.SetDefault("refresh.network", d.Refresh.Network.String())
	v.SetDefault("refresh.procs", d.Refresh.Procs.String())
	v.SetDefault("refresh.connections", d.Refresh.Connections.String())
	v.SetDefault("refresh.info", d.Refresh.Info.String())
	v.SetDefault("disk.mount", d.Disk.Mount)
	v.SetDefault("network.interface", d.Network.Interface)
	v.SetDefault("procs.max", d.Procs.Max)
	v.SetDefault("procs.sort", d.Procs.Sort)
	v.SetDefault("thresholds.warning", d.Thresholds.Warning)
	v.SetDefault("thresholds.critical", d.Thresholds.Critical)
}
