// Package sparkline renders a scalar time series as a compact terminal graph.
//
// A Stream has a fixed geometry (width columns, height rows) and a value range.
// Each call to AddValue quantizes the sample to a discrete fill level, pushes it
// into a fixed-capacity ring (evicting the oldest level once full) and marks the
// render surface stale. Graph re-encodes the surface on demand.
//
// # Glyph modes
//
//	ModeBraille - 2 samples per cell, 4 levels per row (U+2800 block)
//	ModeBlock   - 1 sample per cell, 8 levels per row (" ▁▂▃▄▅▆▇█")
//
// Braille cells pack two consecutive samples: the left dot column shows the
// older one, the right dot column the newer one. The newest sample always lands
// in the right column of the last cell.
//
// # Quantization
//
// Levels use ceiling rounding: anything above the range minimum is visible,
// the maximum fills the full height. Values outside the range are clamped and
// non-finite values map to the nearest bound (NaN maps to the minimum).
//
// # Multi-row graphs
//
// When height > 1 a level is spread across rows starting at the fill origin:
// full rows first, then the row holding the remainder, then blank rows. With
// WithFlipUD the origin moves to the top row and every column fills downward.
//
// Streams are not safe for concurrent use. The owner serializes AddValue and
// Graph calls.
package sparkline
