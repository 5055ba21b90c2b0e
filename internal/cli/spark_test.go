package cli

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/sparkline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparkCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		opts  sparkOptions
		want  string
	}{
		{
			name: "block ramp with data range",
			args: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8"},
			opts: sparkOptions{Graph: GraphFlags{Mode: "block"}},
			want: " ▁▂▃▄▅▆▇█\n",
		},
		{
			name: "braille pairs with explicit range",
			args: []string{"10", "30", "60", "90"},
			opts: sparkOptions{Width: 3, Min: 0, MinSet: true, Max: 100, MaxSet: true},
			want: " ⣠⣾\n",
		},
		{
			name: "braille fits width to the values",
			args: []string{"10 30", "60 90"},
			opts: sparkOptions{Min: 0, MinSet: true, Max: 100, MaxSet: true},
			want: "⣠⣾\n",
		},
		{
			name: "range spanning most of float64",
			args: []string{"1e308", "0", "-1e308"},
			opts: sparkOptions{Graph: GraphFlags{Mode: "block"}},
			want: "█▄ \n",
		},
		{
			name:  "reads stdin when no args",
			stdin: "10\n30\n60\n90\n",
			opts:  sparkOptions{Width: 3, Min: 0, MinSet: true, Max: 100, MaxSet: true},
			want:  " ⣠⣾\n",
		},
		{
			name: "flipped block",
			args: []string{"8", "4"},
			opts: sparkOptions{Graph: GraphFlags{Mode: "block"}, Flip: true, Min: 0, MinSet: true, Max: 8, MaxSet: true},
			want: "█▀\n",
		},
		{
			name: "tall braille",
			args: []string{"43", "10", "100", "76", "0"},
			opts: sparkOptions{Width: 3, Graph: GraphFlags{Height: 4}, Min: 0, MinSet: true, Max: 100, MaxSet: true},
			want: " ⢸⡀\n ⢸⡇\n⢰⢸⡇\n⢸⣼⡇\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := sparkCommand(strings.NewReader(tt.stdin), &out, tt.args, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSparkCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		opts        sparkOptions
		errContains string
	}{
		{
			name:        "bad token is named",
			args:        []string{"1", "two", "3"},
			errContains: "'two' isn't a number",
		},
		{
			name:        "bad token on stdin",
			stdin:       "1\n2\nx3\n",
			errContains: "'x3'",
		},
		{
			name:        "no values",
			stdin:       "   \n",
			errContains: "No values",
		},
		{
			name:        "unknown mode",
			args:        []string{"1"},
			opts:        sparkOptions{Graph: GraphFlags{Mode: "dots"}},
			errContains: "graph mode",
		},
		{
			name:        "empty range",
			args:        []string{"1", "2"},
			opts:        sparkOptions{Min: 5, MinSet: true, Max: 5, MaxSet: true},
			errContains: "range",
		},
		{
			name:        "negative width",
			args:        []string{"1"},
			opts:        sparkOptions{Width: -1},
			errContains: "graph",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := sparkCommand(strings.NewReader(tt.stdin), &out, tt.args, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Empty(t, out.String())
		})
	}
}

func TestParseValues(t *testing.T) {
	values, err := parseValues(strings.NewReader("1 2.5\n-3\t1e3 NaN"))
	require.NoError(t, err)
	require.Len(t, values, 5)
	assert.Equal(t, []float64{1, 2.5, -3, 1000}, values[:4])
	assert.True(t, math.IsNaN(values[4]), "NaN passes through")
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		n    int
		mode sparkline.Mode
		want int
	}{
		{0, sparkline.ModeBraille, 1},
		{1, sparkline.ModeBraille, 1},
		{2, sparkline.ModeBraille, 1},
		{5, sparkline.ModeBraille, 3},
		{5, sparkline.ModeBlock, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fitWidth(tt.n, tt.mode), "n=%d mode=%s", tt.n, tt.mode)
	}
}

func TestDataRange(t *testing.T) {
	tests := []struct {
		name           string
		values         []float64
		wantLo, wantHi float64
	}{
		{"spread", []float64{3, -1, 7}, -1, 7},
		{"constant", []float64{4, 4}, 4, 5},
		{"only non-finite", []float64{math.NaN(), math.Inf(1)}, 0, 1},
		{"skips non-finite", []float64{math.NaN(), 2, math.Inf(1), 6}, 2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := dataRange(tt.values)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}
