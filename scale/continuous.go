// SPDX-License-Identifier: MIT

package scale

import "math"

// Continuous resolves values by linear interpolation across an ordered
// color array stretched over a numeric range [min, max]. Immutable once
// constructed; safe for concurrent use.
//
// The interpolation factor is global — (v-min)/(max-min) across the whole
// range — not re-normalized per color pair. This is deliberate, carried
// over from the reference behavior, and it shapes the output: with colors
// [c0, c1] a value in the upper half of the range resolves to pure c1,
// because the bucket position has already moved past the last pair.
type Continuous struct {
	colors     []Color
	nanColor   Color
	emptyColor Color

	hasRange bool
	min, max float64
}

// NewContinuous builds a Continuous scale from at least one color.
// WithRange fixes the numeric range up front; an unranged scale assumes
// [0,1] in Resolve and is re-ranged by grid resolution against the
// observed data (see Ranged). The input slice is copied, never retained.
// Returns ErrNoColors when colors is empty.
// Complexity: O(n).
func NewContinuous(colors []Color, opts ...Option) (*Continuous, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	o := gatherOptions(opts)

	cs := make([]Color, len(colors))
	copy(cs, colors)

	return &Continuous{
		colors:     cs,
		nanColor:   o.nanColor,
		emptyColor: o.emptyColor,
		hasRange:   o.hasRange,
		min:        o.min,
		max:        o.max,
	}, nil
}

// Ranged returns a copy of s bound to [min, max]. Reversed bounds are
// swapped. The receiver is untouched.
// Complexity: O(1) plus the shared color slice (which is never mutated).
func (s *Continuous) Ranged(min, max float64) *Continuous {
	if min > max {
		min, max = max, min
	}
	c := *s
	c.hasRange = true
	c.min, c.max = min, max

	return &c
}

// HasRange reports whether the scale carries a fixed numeric range.
func (s *Continuous) HasRange() bool { return s.hasRange }

// Range returns the configured range, or the assumed [0,1] when unranged.
func (s *Continuous) Range() (min, max float64) {
	if !s.hasRange {
		return 0, 1
	}

	return s.min, s.max
}

// Resolve maps v using the configured range ([0,1] when unranged).
// Complexity: O(1).
func (s *Continuous) Resolve(v float64) Color {
	min, max := s.Range()

	return s.ResolveIn(v, min, max)
}

// ResolveIn maps v onto the color array stretched over [min, max]:
//
//	step = (max-min)/len(colors)
//	position = floor((v-min)/step), next = min(position+1, len-1)
//	t = (v-min)/(max-min)                    // global factor
//	result = Lerp(colorAt(position), colorAt(next), t)
//
// Out-of-bounds positions (negative or past the end, including the ±Inf
// positions produced by infinite values) fall back to the last color.
// NaN resolves to the NaN color. A degenerate range (min == max)
// resolves every non-NaN value to the first color. Reversed bounds are
// swapped. Total for every float64 input.
// Complexity: O(1).
func (s *Continuous) ResolveIn(v, min, max float64) Color {
	if math.IsNaN(v) {
		return s.nanColor
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return s.colors[0]
	}

	n := len(s.colors)
	span := max - min
	step := span / float64(n)
	position := math.Floor((v - min) / step)
	next := position + 1
	if next > float64(n-1) {
		next = float64(n - 1)
	}
	t := (v - min) / span

	return Lerp(s.colorAt(position), s.colorAt(next), t)
}

// NaNColor returns the color used for NaN values.
func (s *Continuous) NaNColor() Color { return s.nanColor }

// EmptyColor returns the color used for positions without data.
func (s *Continuous) EmptyColor() Color { return s.emptyColor }

// Colors returns a copy of the color array.
func (s *Continuous) Colors() []Color {
	out := make([]Color, len(s.colors))
	copy(out, s.colors)

	return out
}

// colorAt indexes the color array by a float position; anything outside
// [0, len) — negative, past the end, NaN, ±Inf — falls back to the last
// color. Taking the index as float64 keeps the int conversion guarded.
func (s *Continuous) colorAt(idx float64) Color {
	if math.IsNaN(idx) || idx < 0 || idx >= float64(len(s.colors)) {
		return s.colors[len(s.colors)-1]
	}

	return s.colors[int(idx)]
}
