// SPDX-License-Identifier: MIT

package scale

import "sort"

// Discrete resolves values against an ordered breakpoint list: a value
// takes the color of the smallest threshold ≥ value, clamping to the top
// color above range. Immutable once constructed; safe for concurrent use.
//
// Thresholds and colors are kept as parallel slices so resolution is a
// plain binary search over a float slice.
type Discrete struct {
	thresholds []float64
	colors     []Color
	nanColor   Color
	emptyColor Color
}

// NewDiscrete builds a Discrete scale from breakpoints plus fallback
// colors (WithNaNColor, WithEmptyColor). Duplicated thresholds collapse —
// the last color supplied for a threshold in input order wins — and the
// result is sorted ascending. The input slice is never retained or
// mutated. An empty breakpoint list is valid: every non-NaN value then
// resolves to the empty color.
// Complexity: O(n log n).
func NewDiscrete(breakpoints []Breakpoint, opts ...Option) *Discrete {
	o := gatherOptions(opts)

	// Dedup by threshold, last-write-wins in input order.
	byThreshold := make(map[float64]Color, len(breakpoints))
	for _, bp := range breakpoints {
		byThreshold[bp.Threshold] = bp.Color
	}

	thresholds := make([]float64, 0, len(byThreshold))
	for t := range byThreshold {
		thresholds = append(thresholds, t)
	}
	sort.Float64s(thresholds)

	colors := make([]Color, len(thresholds))
	for i, t := range thresholds {
		colors[i] = byThreshold[t]
	}

	return &Discrete{
		thresholds: thresholds,
		colors:     colors,
		nanColor:   o.nanColor,
		emptyColor: o.emptyColor,
	}
}

// Resolve maps v onto the breakpoint colors:
// NaN → NaN color; empty scale → empty color; below range → first color;
// above range → last color; otherwise the color at the lower bound.
// Complexity: O(log n).
func (s *Discrete) Resolve(v float64) Color {
	switch idx := LowerBoundIndex(s.thresholds, v); idx {
	case IndexEmpty:
		return s.emptyColor
	case IndexNaN:
		return s.nanColor
	default:
		return s.colors[idx]
	}
}

// NaNColor returns the color used for NaN values.
func (s *Discrete) NaNColor() Color { return s.nanColor }

// EmptyColor returns the color used for positions without data.
func (s *Discrete) EmptyColor() Color { return s.emptyColor }

// Breakpoints returns a copy of the stored breakpoints, sorted ascending.
// The copy keeps the scale immutable.
// Complexity: O(n).
func (s *Discrete) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(s.thresholds))
	for i, t := range s.thresholds {
		out[i] = Breakpoint{Threshold: t, Color: s.colors[i]}
	}

	return out
}

// Len returns the number of distinct breakpoints.
func (s *Discrete) Len() int { return len(s.thresholds) }
