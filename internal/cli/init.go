package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sot/internal/config"
	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Global         bool      // Write ~/.config/sot/config.yaml instead of ./.sot.yaml
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Skip prompts, use defaults
	Out            io.Writer // Defaults to stdout
}

// initDefaults holds values derived from the environment.
type initDefaults struct {
	NonInteractive bool
}

// getInitDefaults reads SOT_NON_INTERACTIVE and CI, and falls back to
// non-interactive when stdin isn't a terminal.
func getInitDefaults() initDefaults {
	nonInteractive := false
	switch strings.ToLower(os.Getenv("SOT_NON_INTERACTIVE")) {
	case "1", "true", "yes":
		nonInteractive = true
	}
	if os.Getenv("CI") != "" || !isTerminal(os.Stdin) {
		nonInteractive = true
	}
	return initDefaults{NonInteractive: nonInteractive}
}

// initPath returns where Init writes.
func initPath(global bool) (string, error) {
	if !global {
		return filepath.Join(".", config.ConfigFileName), nil
	}
	path := config.GlobalPath()
	if path == "" {
		return "", errors.New(errors.ErrConfig,
			"Can't find your home directory",
			"Set $HOME, or run 'sot init' without --global to write ./"+config.ConfigFileName)
	}
	return path, nil
}

// Init writes a new config file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	configPath, err := initPath(opts.Global)
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Fprint(out, ui.RenderHeader(ui.HeaderInfo{
		Version:    formatVersion(version),
		Mode:       cfg.Graph.Mode,
		ConfigPath: configPath,
	}))
	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, ui.RenderSimpleTable(summaryColumns, summaryRows(cfg)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  sot              - Start the dashboard")
	fmt.Fprintln(out, "  sot spark 1 5 3  - Draw a sparkline from numbers")

	return nil
}

// promptConfig asks for the commonly tuned settings and writes them into cfg.
func promptConfig(cfg *config.Config) error {
	height := strconv.Itoa(cfg.Graph.Height)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Graph style").
				Description("Braille packs two samples per cell; block is coarser but works in more fonts").
				Options(huh.NewOptions("braille", "block")...).
				Value(&cfg.Graph.Mode),
			huh.NewInput().
				Title("Graph height").
				Description(fmt.Sprintf("Rows per graph (1-%d)", config.MaxGraphHeight)).
				Value(&height).
				Validate(validateHeightInput),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Disk mount").
				Description("Filesystem shown in the disk panel (supports ~ and ${HOME})").
				Placeholder("/").
				Value(&cfg.Disk.Mount).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("mount point is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Network interface (optional)").
				Description("Leave empty to sum every non-loopback interface").
				Placeholder("eth0").
				Value(&cfg.Network.Interface),
			huh.NewSelect[string]().
				Title("Sort processes by").
				Options(huh.NewOptions(config.ValidProcSorts...)...).
				Value(&cfg.Procs.Sort),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or set SOT_NON_INTERACTIVE=1")
	}

	// Validated by the form.
	cfg.Graph.Height, _ = strconv.Atoi(strings.TrimSpace(height))
	cfg.Disk.Mount = config.ExpandTilde(config.Expand(cfg.Disk.Mount))
	cfg.Network.Interface = strings.TrimSpace(cfg.Network.Interface)
	return nil
}

// validateHeightInput checks the graph height prompt.
func validateHeightInput(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("height must be a whole number")
	}
	if n < 1 || n > config.MaxGraphHeight {
		return fmt.Errorf("height must be between 1 and %d", config.MaxGraphHeight)
	}
	return nil
}

var summaryColumns = []ui.TableColumn{
	{Title: "Setting", Width: 18},
	{Title: "Value", Width: 24},
}

// summaryRows lists the settings written by Init.
func summaryRows(cfg *config.Config) [][]string {
	iface := cfg.Network.Interface
	if iface == "" {
		iface = "all"
	}
	return [][]string{
		{"graph.mode", cfg.Graph.Mode},
		{"graph.height", strconv.Itoa(cfg.Graph.Height)},
		{"disk.mount", cfg.Disk.Mount},
		{"network.interface", iface},
		{"procs.sort", cfg.Procs.Sort},
		{"refresh.cpu", cfg.Refresh.CPU.String()},
	}
}
