package dashboard

import (
	"math"
	"testing"

	"github.com/rileyhilliard/sot/internal/sparkline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceCeil(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, minRateCeiling},
		{500, minRateCeiling},
		{1024, minRateCeiling},
		{1500, 2000},
		{2000, 2000},
		{2001, 5000},
		{7000, 10000},
		{12345, 20000},
		{999999, 1000000},
		{math.Inf(1), minRateCeiling},
		{math.NaN(), minRateCeiling},
		{1.5e308, math.MaxFloat64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, niceCeil(tt.in), "niceCeil(%v)", tt.in)
	}
}

func TestSeries_ReplaysHistoryOnResize(t *testing.T) {
	s := newPercentSeries()
	s.push(100)
	s.push(0)
	assert.Nil(t, s.graph(), "no stream before the first resize")

	require.NoError(t, s.resize(1, 1, sparkline.ModeBlock))
	assert.Equal(t, []string{" "}, s.graph(), "newest sample wins the single block cell")

	require.NoError(t, s.resize(2, 1, sparkline.ModeBlock))
	assert.Equal(t, []string{"█ "}, s.graph())

	s.push(100)
	assert.Equal(t, []string{" █"}, s.graph())
}

func TestSeries_ResizeNoop(t *testing.T) {
	s := newPercentSeries()
	require.NoError(t, s.resize(4, 2, sparkline.ModeBraille))
	stream := s.stream

	require.NoError(t, s.resize(4, 2, sparkline.ModeBraille))
	assert.Same(t, stream, s.stream)

	require.NoError(t, s.resize(4, 2, sparkline.ModeBlock))
	assert.NotSame(t, stream, s.stream)
	assert.Equal(t, sparkline.ModeBlock, s.stream.Mode())
}

func TestSeries_InvalidGeometry(t *testing.T) {
	s := newPercentSeries()
	require.NoError(t, s.resize(0, 3, sparkline.ModeBraille))
	assert.Nil(t, s.graph())
}

func TestSeries_AutoRange(t *testing.T) {
	s := newRateSeries(false)
	require.NoError(t, s.resize(2, 1, sparkline.ModeBlock))

	s.push(minRateCeiling)
	assert.Equal(t, []string{" █"}, s.graph())

	s.push(4 * minRateCeiling)
	assert.Equal(t, 5000.0, s.vmax)

	_, vmax := s.stream.Range()
	assert.Equal(t, 5000.0, vmax)
	g := s.graph()
	require.Len(t, g, 1)
	assert.Equal(t, '▇', []rune(g[0])[1], "4096 of 5000 is level 7 of 8")
	assert.Equal(t, '▂', []rune(g[0])[0], "replayed 1024 of 5000 rounds up to level 2")
}

func TestSeries_FlippedRate(t *testing.T) {
	s := newRateSeries(true)
	require.NoError(t, s.resize(1, 2, sparkline.ModeBlock))
	assert.True(t, s.stream.FlipUD())

	s.push(minRateCeiling)
	assert.Equal(t, []string{"█", "█"}, s.graph())
}

func TestSeries_NonFiniteKeepsCeiling(t *testing.T) {
	s := newRateSeries(false)
	require.NoError(t, s.resize(2, 1, sparkline.ModeBlock))

	require.NoError(t, s.push(4*minRateCeiling))
	require.Equal(t, 5000.0, s.vmax)

	require.NoError(t, s.push(math.Inf(1)))
	assert.Equal(t, 5000.0, s.vmax)
	assert.Equal(t, []string{"▇█"}, s.graph(), "infinity draws at the ceiling")

	require.NoError(t, s.push(math.NaN()))
	assert.Equal(t, 5000.0, s.vmax)
}

func TestSeries_PushReportsRebuildError(t *testing.T) {
	s := newRateSeries(false)
	require.NoError(t, s.resize(2, 1, sparkline.ModeBlock))
	s.vmin = 1e7

	err := s.push(3e6)
	require.Error(t, err)
	assert.ErrorIs(t, err, sparkline.ErrInvalidRange)
	assert.Nil(t, s.graph())
}
