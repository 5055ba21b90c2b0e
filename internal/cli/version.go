package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Set by main from ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the sot version along with the commit, build date and Go toolchain it was built with.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(cmd.OutOrStdout(), versionShort)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}

// buildDetails is the labelled part of the long version output.
func buildDetails() [][2]string {
	return [][2]string{
		{"commit", commit},
		{"built", date},
		{"go", runtime.Version()},
		{"os/arch", runtime.GOOS + "/" + runtime.GOARCH},
	}
}

func writeVersion(out io.Writer, short bool) {
	if short {
		fmt.Fprintln(out, version)
		return
	}
	fmt.Fprintf(out, "sot %s\n", formatVersion(version))
	for _, kv := range buildDetails() {
		fmt.Fprintf(out, "%s: %s\n", kv[0], kv[1])
	}
}

// formatVersion adds a leading v to release versions. dev builds are left alone.
func formatVersion(v string) string {
	switch {
	case v == "" || v == "dev":
		return v
	case v[0] == 'v':
		return v
	default:
		return "v" + v
	}
}

// SetVersionInfo records the build metadata passed in by main.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// GetVersion returns the version string.
func GetVersion() string {
	return version
}
