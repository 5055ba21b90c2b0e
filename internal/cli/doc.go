// Package cli implements the sot command-line interface.
//
// The package is organized around Cobra commands, each delegating to a plain
// function that takes its options as a struct so it can be tested without
// cobra:
//
//	sot                 - Full-screen system dashboard (dashboardCommand)
//	sot spark [values]  - Print a sparkline from numbers (sparkCommand)
//	sot init            - Create .sot.yaml (Init)
//	sot version         - Print build information
//	sot completion      - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command.
// GraphFlags and AddGraphFlags give the dashboard and spark the same --mode
// and --height flags; GraphFlags.Apply layers them over the loaded config.
//
// # Logging
//
// The dashboard owns the terminal, so before it starts the std log output is
// sent to --log-file, to a temp file when SOT_DEBUG is set, or discarded.
package cli
