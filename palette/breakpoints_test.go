package palette_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatgrid/palette"
	"github.com/katalvlaran/heatgrid/scale"
)

var (
	cLow  = scale.RGB(0, 0, 255)
	cHigh = scale.RGB(255, 0, 0)
)

// TestQuantileBreakpoints_EvenQuantiles: two colors split [1,2,3,4] at
// the empirical median and maximum.
func TestQuantileBreakpoints_EvenQuantiles(t *testing.T) {
	bps, err := palette.QuantileBreakpoints(
		[]float64{4, 1, 3, 2}, // unsorted on purpose
		[]scale.Color{cLow, cHigh},
	)
	require.NoError(t, err)

	require.Equal(t, []scale.Breakpoint{
		{Threshold: 2, Color: cLow},
		{Threshold: 4, Color: cHigh},
	}, bps)
}

// TestQuantileBreakpoints_IgnoresNonFinite: NaN and ±Inf never become
// thresholds.
func TestQuantileBreakpoints_IgnoresNonFinite(t *testing.T) {
	bps, err := palette.QuantileBreakpoints(
		[]float64{math.NaN(), 10, math.Inf(1), 20, math.Inf(-1)},
		[]scale.Color{cLow, cHigh},
	)
	require.NoError(t, err)

	require.Equal(t, 10.0, bps[0].Threshold)
	require.Equal(t, 20.0, bps[1].Threshold)
}

// TestQuantileBreakpoints_InputNotMutated: the caller's value slice keeps
// its order; sorting happens on a copy.
func TestQuantileBreakpoints_InputNotMutated(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := palette.QuantileBreakpoints(values, []scale.Color{cLow})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, values)
}

// TestQuantileBreakpoints_Errors covers both sentinels.
func TestQuantileBreakpoints_Errors(t *testing.T) {
	_, err := palette.QuantileBreakpoints([]float64{1, 2}, nil)
	require.True(t, errors.Is(err, palette.ErrNoColors))

	_, err = palette.QuantileBreakpoints([]float64{math.NaN()}, []scale.Color{cLow})
	require.True(t, errors.Is(err, palette.ErrNoValues))

	_, err = palette.QuantileBreakpoints(nil, []scale.Color{cLow})
	require.True(t, errors.Is(err, palette.ErrNoValues))
}

// TestLinearBreakpoints_EvenBands: thresholds sit at the upper edges of
// equal bands, ending exactly at max.
func TestLinearBreakpoints_EvenBands(t *testing.T) {
	bps, err := palette.LinearBreakpoints(0, 10, []scale.Color{cLow, cHigh})
	require.NoError(t, err)

	require.Equal(t, []scale.Breakpoint{
		{Threshold: 5, Color: cLow},
		{Threshold: 10, Color: cHigh},
	}, bps)
}

// TestLinearBreakpoints_Errors covers empty colors and bad ranges.
func TestLinearBreakpoints_Errors(t *testing.T) {
	_, err := palette.LinearBreakpoints(0, 1, nil)
	require.True(t, errors.Is(err, palette.ErrNoColors))

	for _, r := range [][2]float64{{1, 0}, {5, 5}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := palette.LinearBreakpoints(r[0], r[1], []scale.Color{cLow})
		require.True(t, errors.Is(err, palette.ErrBadRange), "range %v", r)
	}
}

// TestBreakpoints_FeedDiscreteScale wires a generated breakpoint list
// into a discrete scale end to end: values at or below a band edge take
// that band's color.
func TestBreakpoints_FeedDiscreteScale(t *testing.T) {
	bps, err := palette.LinearBreakpoints(0, 100, []scale.Color{cLow, cHigh})
	require.NoError(t, err)

	s := scale.NewDiscrete(bps)
	require.Equal(t, cLow, s.Resolve(12))
	require.Equal(t, cLow, s.Resolve(50))
	require.Equal(t, cHigh, s.Resolve(51))
	require.Equal(t, cHigh, s.Resolve(100))
	require.Equal(t, cHigh, s.Resolve(1e9)) // clamp above range
}
