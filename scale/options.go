// SPDX-License-Identifier: MIT

// Package scale: functional configuration for scale constructors.
// Defaults are the single source of truth below; option constructors
// panic only on nonsensical values (programmer error), never on data.
package scale

import "math"

// Default fallback colors. They apply to both variants unless overridden
// via WithNaNColor / WithEmptyColor.
var (
	// DefaultNaNColor is a mid gray: visibly "present but not a number".
	DefaultNaNColor = RGB(128, 128, 128)

	// DefaultEmptyColor is white: positions with no data blend into a
	// typical page background.
	DefaultEmptyColor = RGB(255, 255, 255)
)

// Internal panic messages (no magic strings at call sites).
const (
	panicRangeInvalid = "scale: WithRange: bounds must be finite and min <= max"
)

// Option mutates construction settings. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported to prevent external mutation; constructors accept
// `...Option` and resolve them via gatherOptions.
type options struct {
	nanColor   Color
	emptyColor Color

	// continuous-only: fixed numeric range
	hasRange bool
	min, max float64
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{
		nanColor:   DefaultNaNColor,
		emptyColor: DefaultEmptyColor,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithNaNColor sets the color returned for NaN values.
func WithNaNColor(c Color) Option {
	return func(o *options) { o.nanColor = c }
}

// WithEmptyColor sets the color returned for positions without data
// (and, on a Discrete scale, for every value when no breakpoints exist).
func WithEmptyColor(c Color) Option {
	return func(o *options) { o.emptyColor = c }
}

// WithRange fixes the numeric range of a Continuous scale. Without it the
// scale stays unranged: Resolve assumes [0,1] and grid resolution binds
// the observed data range instead.
//
// Panics when min or max is NaN/±Inf or min > max — a reversed or
// non-finite configured range is a programmer error, unlike runtime data,
// which is never rejected.
func WithRange(min, max float64) Option {
	if isNonFinite(min) || isNonFinite(max) || min > max {
		panic(panicRangeInvalid)
	}

	return func(o *options) {
		o.hasRange = true
		o.min, o.max = min, max
	}
}

// isNonFinite reports whether f is NaN or ±Inf.
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
