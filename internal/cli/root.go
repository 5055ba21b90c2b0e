package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/ui"
	"github.com/rileyhilliard/sot/internal/util"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile    string
	logFile    string
	noColor    bool
	graphFlags GraphFlags
)

// rootCmd runs the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sot",
	Short: "Live system dashboard drawn with braille and block sparklines",
	Long: `sot shows CPU, memory, disk, network, connections and processes for the
local machine as scrolling sparkline graphs.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh every panel now
  m           Toggle braille/block graphs
  s           Cycle process sort (cpu/mem/pid/name)
  up/k        Select previous process
  down/j      Select next process
  Enter       Show process details
  Esc         Go back
  t / K       Terminate / kill the selected process
  ?           Show help

Examples:
  sot
  sot --mode block --height 6
  sot --config ~/sot.yaml
  SOT_DEBUG=1 sot --log-file /tmp/sot.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardOptions{
			ConfigPath: cfgFile,
			LogFile:    logFile,
			Graph:      graphFlags,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.sot.yaml or ~/.config/sot/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file while the dashboard runs")
	AddGraphFlags(rootCmd, &graphFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders err for the terminal. Structured errors already carry
// the ✗ marker and suggestion; cobra's own errors get translated first.
func formatError(err error) string {
	if isUnknownCommandError(err) {
		if name := extractUnknownCommand(err); name != "" {
			suggestion := "Run 'sot --help' to see available commands."
			if similar := util.SuggestSimilar(name, commandNames(), 3); len(similar) > 0 {
				suggestion = fmt.Sprintf("Did you mean %s? %s", util.JoinOrNone(similar), suggestion)
			}
			err = errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown command '%s'", name),
				suggestion)
		}
	}

	var sotErr *errors.Error
	if stderrors.As(err, &sotErr) {
		return sotErr.Error()
	}
	return fmt.Sprintf("%s %s\n", ui.SymbolFail, err.Error())
}

// commandNames lists the visible subcommands of sot.
func commandNames() []string {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		if !cmd.Hidden {
			names = append(names, cmd.Name())
		}
	}
	return names
}

// isUnknownCommandError reports whether cobra rejected the command line
// itself rather than a command failing.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "sot"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
