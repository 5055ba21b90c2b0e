package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sot/internal/errors"
	"github.com/rileyhilliard/sot/internal/sparkline"
)

// sparkOptions holds the spark command's flags. Min and Max only apply when
// their Set field is true; otherwise the range comes from the data.
type sparkOptions struct {
	Width  int
	Graph  GraphFlags
	Min    float64
	MinSet bool
	Max    float64
	MaxSet bool
	Flip   bool
}

// sparkCommand draws the values in args, or on in when args is empty.
func sparkCommand(in io.Reader, out io.Writer, args []string, opts sparkOptions) error {
	var (
		values []float64
		err    error
	)
	if len(args) > 0 {
		values, err = parseValues(strings.NewReader(strings.Join(args, " ")))
	} else {
		values, err = parseValues(in)
	}
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return errors.New(errors.ErrConfig,
			"No values to draw",
			"Pass numbers as arguments or on stdin, like: echo 1 5 3 8 | sot spark")
	}

	mode, err := ParseGraphMode(opts.Graph.Mode)
	if err != nil {
		return err
	}

	height := opts.Graph.Height
	if height == 0 {
		height = 1
	}
	width := opts.Width
	if width == 0 {
		width = fitWidth(len(values), mode)
	}

	vmin, vmax := dataRange(values)
	if opts.MinSet {
		vmin = opts.Min
	}
	if opts.MaxSet {
		vmax = opts.Max
	}

	stream, err := sparkline.New(width, height, vmin, vmax,
		sparkline.WithMode(mode),
		sparkline.WithFlipUD(opts.Flip),
	)
	if err != nil {
		return err
	}
	for _, v := range values {
		stream.AddValue(v)
	}

	for _, line := range stream.Graph() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, "Failed to write graph", "")
		}
	}
	return nil
}

// parseValues reads whitespace separated numbers. The first bad token fails
// the whole read.
func parseValues(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []float64
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a number", tok),
				"Separate values with spaces or newlines, like: sot spark 1 5 3 8")
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read values",
			"Check the input stream")
	}
	return values, nil
}

// fitWidth is the narrowest graph that shows every value.
func fitWidth(n int, mode sparkline.Mode) int {
	per := mode.SamplesPerCell()
	w := (n + per - 1) / per
	if w < 1 {
		w = 1
	}
	return w
}

// dataRange returns the min and max of the finite values, widened so the
// range is never empty.
func dataRange(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
