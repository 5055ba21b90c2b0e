package cli

import (
	"fmt"

	"github.com/rileyhilliard/sot/internal/config"
	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/sparkline"
	"github.com/spf13/cobra"
)

// GraphFlags holds the graph geometry flags shared by the dashboard and spark.
type GraphFlags struct {
	Mode   string
	Height int
}

// AddGraphFlags registers --mode and --height on a command.
func AddGraphFlags(cmd *cobra.Command, flags *GraphFlags) {
	cmd.Flags().StringVar(&flags.Mode, "mode", "", "graph glyphs: braille or block")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "graph height in rows")
}

// ParseGraphMode parses a --mode value. Empty means braille.
func ParseGraphMode(flag string) (sparkline.Mode, error) {
	mode, err := sparkline.ParseMode(flag)
	if err != nil {
		return mode, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a graph mode", flag),
			"Use --mode braille or --mode block.")
	}
	return mode, nil
}

// Apply copies any flags the user set onto cfg. Zero values leave the config
// untouched.
func (f GraphFlags) Apply(cfg *config.Config) error {
	if f.Mode != "" {
		mode, err := ParseGraphMode(f.Mode)
		if err != nil {
			return err
		}
		cfg.Graph.Mode = mode.String()
	}
	if f.Height != 0 {
		cfg.Graph.Height = f.Height
	}
	return nil
}
