package sparkline

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/sot/internal/errors"
)

// Stream is a fixed-size sparkline fed one sample at a time.
type Stream struct {
	width  int
	height int
	vmin   float64
	vmax   float64
	flip   bool
	mode   Mode

	enc      GlyphEncoder
	maxLevel int
	levels   *levelRing

	grid  []string
	dirty bool

	// scratch space reused across renders
	totals []int
	cell   []int
}

type options struct {
	flip bool
	mode Mode
}

// Option configures a Stream at construction time.
type Option func(*options)

// WithFlipUD draws the graph hanging from the top row.
func WithFlipUD(flip bool) Option {
	return func(o *options) { o.flip = flip }
}

// WithMode selects the glyph encoder. The default is ModeBraille.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// New creates a stream of width x height cells over the range [vmin, vmax].
// Invalid geometry or range returns a CONFIG error wrapping ErrInvalidGeometry
// or ErrInvalidRange.
func New(width, height int, vmin, vmax float64, opts ...Option) (*Stream, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.WrapWithCode(ErrInvalidGeometry, errors.ErrConfig,
			fmt.Sprintf("Can't draw a %dx%d graph", width, height),
			"Graphs need at least one column and one row. Widen the terminal or raise graph.height.")
	}
	if math.IsNaN(vmin) || math.IsNaN(vmax) || math.IsInf(vmin, 0) || math.IsInf(vmax, 0) || vmin >= vmax {
		return nil, errors.WrapWithCode(ErrInvalidRange, errors.ErrConfig,
			fmt.Sprintf("Graph range [%g, %g] is empty", vmin, vmax),
			"Pick a minimum strictly below the maximum.")
	}

	o := options{mode: ModeBraille}
	for _, opt := range opts {
		opt(&o)
	}

	enc := encoderFor(o.mode)
	perCell := enc.SamplesPerCell()
	s := &Stream{
		width:    width,
		height:   height,
		vmin:     vmin,
		vmax:     vmax,
		flip:     o.flip,
		mode:     o.mode,
		enc:      enc,
		maxLevel: enc.PerRow() * height,
		levels:   newLevelRing(width * perCell),
		dirty:    true,
		totals:   make([]int, perCell),
		cell:     make([]int, perCell),
	}
	return s, nil
}

// AddValue quantizes v and appends it, dropping the oldest sample once the
// stream holds Cap() samples. It never fails.
func (s *Stream) AddValue(v float64) {
	s.levels.push(quantize(v, s.vmin, s.vmax, s.maxLevel))
	s.dirty = true
}

// Graph returns the current render as Height() strings of Width() runes each.
// Row 0 is the top of the terminal area. The slice is a copy.
func (s *Stream) Graph() []string {
	if s.dirty {
		s.render()
	}
	out := make([]string, len(s.grid))
	copy(out, s.grid)
	return out
}

// Levels returns the stored levels, oldest first.
func (s *Stream) Levels() []int {
	return s.levels.slice()
}

// ColumnLevels returns the highest level drawn in each cell, left to right.
// Callers use it to pick a display attribute per column.
func (s *Stream) ColumnLevels() []int {
	perCell := s.enc.SamplesPerCell()
	out := make([]int, s.width)
	for col := range out {
		for j := 0; j < perCell; j++ {
			if l := s.levels.window(col*perCell + j); l > out[col] {
				out[col] = l
			}
		}
	}
	return out
}

func (s *Stream) Width() int    { return s.width }
func (s *Stream) Height() int   { return s.height }
func (s *Stream) Len() int      { return s.levels.len() }
func (s *Stream) Cap() int      { return s.levels.cap() }
func (s *Stream) MaxLevel() int { return s.maxLevel }
func (s *Stream) Mode() Mode    { return s.mode }
func (s *Stream) FlipUD() bool  { return s.flip }

// Range returns the value range the stream quantizes against.
func (s *Stream) Range() (vmin, vmax float64) {
	return s.vmin, s.vmax
}

// render re-encodes every cell from the ring.
func (s *Stream) render() {
	perCell := s.enc.SamplesPerCell()
	perRow := s.enc.PerRow()

	rows := make([][]rune, s.height)
	for r := range rows {
		rows[r] = make([]rune, s.width)
	}

	for col := 0; col < s.width; col++ {
		for j := 0; j < perCell; j++ {
			s.totals[j] = s.levels.window(col*perCell + j)
		}
		for r := 0; r < s.height; r++ {
			fromOrigin := s.height - 1 - r
			if s.flip {
				fromOrigin = r
			}
			for j := 0; j < perCell; j++ {
				s.cell[j] = rowLevel(s.totals[j], fromOrigin, perRow)
			}
			rows[r][col] = s.enc.EncodeCell(s.cell, s.flip)
		}
	}

	s.grid = make([]string, s.height)
	for r, row := range rows {
		s.grid[r] = string(row)
	}
	s.dirty = false
}
