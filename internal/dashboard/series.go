package dashboard

import (
	"math"

	"github.com/rileyhilliard/sot/internal/sparkline"
)

// series is one graphed metric: raw history plus the stream drawing it.
type series struct {
	raw       *ringBuffer
	vmin      float64
	vmax      float64
	flip      bool
	autoRange bool

	stream *sparkline.Stream
	width  int
	height int
	mode   sparkline.Mode
}

// newPercentSeries graphs a 0-100 metric.
func newPercentSeries() *series {
	return &series{raw: newRingBuffer(historySize), vmin: 0, vmax: 100}
}

// newRateSeries graphs a byte rate whose ceiling grows with the data.
func newRateSeries(flip bool) *series {
	return &series{
		raw:       newRingBuffer(historySize),
		vmin:      0,
		vmax:      minRateCeiling,
		flip:      flip,
		autoRange: true,
	}
}

// minRateCeiling keeps idle links from drawing noise at full height.
const minRateCeiling = 1024

// push records v and feeds it to the stream. A non-finite v is drawn but
// never moves the ceiling. The error comes from rebuilding after the
// ceiling grows.
func (s *series) push(v float64) error {
	s.raw.push(v)

	if s.autoRange && isFinite(v) && v > s.vmax {
		s.vmax = niceCeil(v)
		return s.rebuild()
	}
	if s.stream != nil {
		s.stream.AddValue(v)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// resize rebuilds the stream for new geometry or mode and replays history.
// A no-op when nothing changed.
func (s *series) resize(width, height int, mode sparkline.Mode) error {
	if s.stream != nil && s.width == width && s.height == height && s.mode == mode {
		return nil
	}
	s.width, s.height, s.mode = width, height, mode
	return s.rebuild()
}

func (s *series) rebuild() error {
	if s.width <= 0 || s.height <= 0 {
		s.stream = nil
		return nil
	}

	stream, err := sparkline.New(s.width, s.height, s.vmin, s.vmax,
		sparkline.WithMode(s.mode), sparkline.WithFlipUD(s.flip))
	if err != nil {
		s.stream = nil
		return err
	}

	for _, v := range s.raw.getLast(stream.Cap()) {
		stream.AddValue(v)
	}
	s.stream = stream
	return nil
}

// graph returns the rendered rows, or nil before the first resize.
func (s *series) graph() []string {
	if s.stream == nil {
		return nil
	}
	return s.stream.Graph()
}

// last returns the newest raw sample.
func (s *series) last() (float64, bool) {
	return s.raw.last()
}

// niceCeil rounds v up to the next 1-2-5 step: 1, 2, 5, 10, 20, 50 and so on.
func niceCeil(v float64) float64 {
	if !isFinite(v) || v <= minRateCeiling {
		return minRateCeiling
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 5, 10} {
		if c := step * exp; c >= v {
			if math.IsInf(c, 0) {
				return math.MaxFloat64
			}
			return c
		}
	}
	return math.MaxFloat64
}
