package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sot/internal/config"
	"github.com/rileyhilliard/sot/internal/dashboard"
	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/logger"
	"github.com/rileyhilliard/sot/internal/metrics"
	"golang.org/x/term"
)

// dashboardOptions holds the root command's inputs.
type dashboardOptions struct {
	ConfigPath string
	LogFile    string
	Graph      GraphFlags
}

// isTerminal is swapped out in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// dashboardCommand starts the full-screen dashboard.
func dashboardCommand(opts dashboardOptions) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New(errors.ErrTTY,
			"sot needs an interactive terminal",
			"Run it directly in a terminal, or pipe numbers into 'sot spark' to draw a graph.")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	appLog := logger.NewEnvLogger("[sot]")
	logger.SetDefault(appLog)

	sampler := metrics.NewSampler(
		metrics.WithMount(cfg.Disk.Mount),
		metrics.WithInterface(cfg.Network.Interface),
		metrics.WithLogger(appLog),
	)
	model := dashboard.NewModel(sampler, cfg, appLog)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTTY,
			"Dashboard stopped unexpectedly",
			"Check that your terminal supports the alternate screen.")
	}
	return nil
}

// loadConfig resolves the config file, applies flag overrides and validates
// the result.
func loadConfig(opts dashboardOptions) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Default().Debug("config: %q", path)

	if err := opts.Graph.Apply(cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging points the std logger somewhere that won't corrupt the
// alternate screen. With no log file and SOT_DEBUG unset, output is dropped.
func setupLogging(path string) (func(), error) {
	if path == "" && logger.DebugEnabled() {
		path = filepath.Join(os.TempDir(), "sot-debug.log")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(config.ExpandTilde(path), "sot")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't open log file %s", path),
			"Check that the directory exists and is writable.")
	}
	return func() { _ = f.Close() }, nil
}
