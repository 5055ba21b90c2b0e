package sparkline

// levelRing is a fixed-capacity ring of levels indexed by insertion count.
// It behaves like an ordered sequence that drops its oldest entry when full.
type levelRing struct {
	data     []int
	inserted int
}

func newLevelRing(size int) *levelRing {
	return &levelRing{data: make([]int, size)}
}

// push appends a level, overwriting the oldest one once the ring is full.
func (r *levelRing) push(level int) {
	r.data[r.inserted%len(r.data)] = level
	r.inserted++
}

// len returns the number of stored levels.
func (r *levelRing) len() int {
	if r.inserted < len(r.data) {
		return r.inserted
	}
	return len(r.data)
}

func (r *levelRing) cap() int {
	return len(r.data)
}

// at returns the i-th stored level, oldest first. i must be in [0, len()).
func (r *levelRing) at(i int) int {
	start := r.inserted - r.len()
	return r.data[(start+i)%len(r.data)]
}

// window returns the level at position p of a right-aligned window of cap()
// slots. Slots not yet populated read as 0.
func (r *levelRing) window(p int) int {
	offset := len(r.data) - r.len()
	if p < offset {
		return 0
	}
	return r.at(p - offset)
}

// slice returns the stored levels in chronological order.
func (r *levelRing) slice() []int {
	out := make([]int, r.len())
	for i := range out {
		out[i] = r.at(i)
	}
	return out
}
