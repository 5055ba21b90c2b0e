package sparkline

import "math"

// quantize maps v onto [0, maxLevel].
// Ceiling rounding keeps any value above vmin visible and makes vmax fully lit.
func quantize(v, vmin, vmax float64, maxLevel int) int {
	switch {
	case math.IsNaN(v), v <= vmin:
		return 0
	case v >= vmax:
		return maxLevel
	}
	// Halved so vmax-vmin can't overflow on ranges near ±MaxFloat64.
	frac := (v/2 - vmin/2) / (vmax/2 - vmin/2)
	level := int(math.Ceil(frac * float64(maxLevel)))
	// frac can underflow to 0 when v sits just above vmin on a huge range.
	if level < 1 {
		level = 1
	}
	return clampLevel(level, maxLevel)
}

// clampLevel clamps a level to [0, maxLevel].
func clampLevel(level, maxLevel int) int {
	if level < 0 {
		return 0
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

// rowLevel returns how much of total falls into the row that sits fromOrigin
// rows away from the fill origin. Rows closer to the origin fill first.
func rowLevel(total, fromOrigin, perRow int) int {
	return clampLevel(total-fromOrigin*perRow, perRow)
}
