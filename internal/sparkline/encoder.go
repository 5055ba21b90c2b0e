package sparkline

// GlyphEncoder turns the per-row levels of one cell into a single rune.
//
// levels holds one entry per sample packed into the cell (SamplesPerCell),
// each already reduced to the row's resolution (0..PerRow). When flip is set
// the column fills from the top edge instead of the bottom.
type GlyphEncoder interface {
	PerRow() int
	SamplesPerCell() int
	EncodeCell(levels []int, flip bool) rune
}

// Braille patterns use a 2x4 dot matrix per character:
//
//	       Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
const brailleBase = '\u2800'

// brailleDots holds the bit for each dot slot, [column][row] with row 0 at the top.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type brailleEncoder struct{}

func (brailleEncoder) PerRow() int         { return 4 }
func (brailleEncoder) SamplesPerCell() int { return 2 }

func (brailleEncoder) EncodeCell(levels []int, flip bool) rune {
	var bits rune
	for col := 0; col < 2 && col < len(levels); col++ {
		for i := 0; i < levels[col]; i++ {
			slot := 3 - i
			if flip {
				slot = i
			}
			bits |= brailleDots[col][slot]
		}
	}
	if bits == 0 {
		return ' '
	}
	return brailleBase + bits
}

// Block ramps indexed by level. The flipped ramp grows from the top edge and
// mixes U+2580 block elements with the legacy computing upper-eighth blocks.
var (
	blockRamp        = []rune(" ▁▂▃▄▅▆▇█")
	blockRampFlipped = []rune{' ', '▔', '\U0001FB82', '\U0001FB83', '▀', '\U0001FB84', '\U0001FB85', '\U0001FB86', '█'}
)

type blockEncoder struct{}

func (blockEncoder) PerRow() int         { return 8 }
func (blockEncoder) SamplesPerCell() int { return 1 }

func (blockEncoder) EncodeCell(levels []int, flip bool) rune {
	if len(levels) == 0 {
		return ' '
	}
	level := clampLevel(levels[0], 8)
	if flip {
		return blockRampFlipped[level]
	}
	return blockRamp[level]
}

// encoderFor returns the strategy for a glyph mode.
func encoderFor(m Mode) GlyphEncoder {
	if m == ModeBlock {
		return blockEncoder{}
	}
	return brailleEncoder{}
}
