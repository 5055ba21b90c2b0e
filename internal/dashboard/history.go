package dashboard

// historySize is the number of raw samples kept per series. Two samples fit
// in a braille cell, so this covers graphs up to 256 columns wide.
const historySize = 512

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	if size <= 0 {
		size = historySize
	}
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head is the next write slot, so the newest value sits at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}

// last returns the newest value.
func (r *ringBuffer) last() (float64, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.data[(r.head-1+r.size)%r.size], true
}

func (r *ringBuffer) len() int { return r.count }
