package cli

import (
	"os"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	sparkOpts  sparkOptions
	initGlobal bool
	initForce  bool
)

// sparkCmd draws a sparkline from numbers without starting the dashboard
var sparkCmd = &cobra.Command{
	Use:   "spark [values...]",
	Short: "Draw a sparkline from numbers",
	Long: `Draw a sparkline from whitespace separated numbers given as arguments
or piped on stdin. The newest values are on the right.

Without --min and --max the range is taken from the data. Without --width
the graph is just wide enough to show every value.

Examples:
  sot spark 1 5 3 8 2
  seq 1 40 | sot spark --height 3
  cat latencies.txt | sot spark --mode block --min 0 --max 500 --width 60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sparkOpts.MinSet = cmd.Flags().Changed("min")
		sparkOpts.MaxSet = cmd.Flags().Changed("max")
		return sparkCommand(cmd.InOrStdin(), cmd.OutOrStdout(), args, sparkOpts)
	},
}

// initCmd creates a new config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sot config file",
	Long: `Create a sot configuration file with sensible defaults.

Writes ./.sot.yaml, or ~/.config/sot/config.yaml with --global. Prompts for
the common settings when run in a terminal.

Examples:
  sot init
  sot init --global
  sot init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := getInitDefaults()
		return Init(InitOptions{
			Global:         initGlobal,
			Overwrite:      initForce,
			NonInteractive: defaults.NonInteractive,
			Out:            cmd.OutOrStdout(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sot.

Examples:
  # Bash
  sot completion bash > /etc/bash_completion.d/sot

  # Zsh
  sot completion zsh > "${fpath[1]}/_sot"

  # Fish
  sot completion fish > ~/.config/fish/completions/sot.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// spark command flags
	sparkCmd.Flags().IntVar(&sparkOpts.Width, "width", 0, "graph width in cells (default: fit the values)")
	sparkCmd.Flags().Float64Var(&sparkOpts.Min, "min", 0, "value drawn as an empty cell (default: data minimum)")
	sparkCmd.Flags().Float64Var(&sparkOpts.Max, "max", 0, "value drawn as a full cell (default: data maximum)")
	sparkCmd.Flags().BoolVar(&sparkOpts.Flip, "flip", false, "draw bars hanging from the top")
	AddGraphFlags(sparkCmd, &sparkOpts.Graph)

	// init command flags
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the user config instead of ./.sot.yaml")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(sparkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
