package sparkline

import (
	"fmt"
	"strings"
)

// Mode selects the glyph encoder used by a Stream.
type Mode int

const (
	// ModeBraille packs two samples per cell with 4 levels per row.
	ModeBraille Mode = iota
	// ModeBlock draws one sample per cell with 8 levels per row.
	ModeBlock
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBraille:
		return "braille"
	case ModeBlock:
		return "block"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Next cycles to the other glyph mode.
func (m Mode) Next() Mode {
	if m == ModeBraille {
		return ModeBlock
	}
	return ModeBraille
}

// ParseMode converts a config or flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "braille", "":
		return ModeBraille, nil
	case "block", "blocks":
		return ModeBlock, nil
	default:
		return ModeBraille, fmt.Errorf("unknown graph mode %q (want braille or block)", s)
	}
}

// SamplesPerCell is how many samples share one terminal cell in this mode.
func (m Mode) SamplesPerCell() int {
	return encoderFor(m).SamplesPerCell()
}
