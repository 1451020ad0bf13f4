package palette

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/heatgrid/scale"
)

// QuantileBreakpoints assigns one breakpoint per color, thresholded at
// evenly spaced empirical quantiles of the observed values: color i owns
// the quantile (i+1)/n, so the last threshold is the observed maximum and
// each color covers roughly the same share of the data. NaN and ±Inf
// values are ignored; the input is never mutated.
//
// Clumpy data can produce duplicate thresholds — scale.NewDiscrete
// collapses those (last color wins), which is the intended outcome: a
// band with no quantile mass disappears.
//
// Returns ErrNoColors for an empty color array and ErrNoValues when no
// finite value exists.
// Complexity: O(v log v + n).
func QuantileBreakpoints(values []float64, colors []scale.Color) ([]scale.Breakpoint, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return nil, ErrNoValues
	}
	sort.Float64s(finite)

	n := len(colors)
	out := make([]scale.Breakpoint, n)
	for i, c := range colors {
		p := float64(i+1) / float64(n)
		out[i] = scale.Breakpoint{
			Threshold: stat.Quantile(p, stat.Empirical, finite, nil),
			Color:     c,
		}
	}

	return out, nil
}

// LinearBreakpoints assigns one breakpoint per color at evenly spaced
// thresholds across [min, max]: color i owns the upper edge of band i,
// min + (max-min)*(i+1)/n, so the last threshold is exactly max.
//
// Returns ErrNoColors for an empty color array and ErrBadRange unless
// min < max with both finite.
// Complexity: O(n).
func LinearBreakpoints(min, max float64, colors []scale.Color) ([]scale.Breakpoint, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		return nil, ErrBadRange
	}

	n := len(colors)
	span := max - min
	out := make([]scale.Breakpoint, n)
	for i, c := range colors {
		threshold := min + span*float64(i+1)/float64(n)
		if i == n-1 {
			threshold = max // no float drift on the top edge
		}
		out[i] = scale.Breakpoint{Threshold: threshold, Color: c}
	}

	return out, nil
}
