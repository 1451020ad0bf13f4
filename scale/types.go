// SPDX-License-Identifier: MIT

// Package scale: domain types shared by the discrete and continuous
// variants. Errors live in errors.go, options in options.go, per the
// package-layout conventions.
package scale

// Breakpoint pairs a threshold with the color owned by that threshold.
// A Discrete scale stores breakpoints sorted ascending by Threshold with
// at most one entry per distinct threshold.
type Breakpoint struct {
	Threshold float64
	Color     Color
}

// Scale is the single dispatch surface over both scale variants.
// Implementations are immutable and safe for concurrent use.
type Scale interface {
	// Resolve maps a value to a color. NaN resolves to NaNColor();
	// every other input (±Inf included) has a defined color.
	Resolve(v float64) Color

	// NaNColor returns the color used for NaN values.
	NaNColor() Color

	// EmptyColor returns the color used for positions without data.
	EmptyColor() Color
}

// Sentinel results of LowerBoundIndex. Kept as named constants so callers
// never compare against bare negative literals.
const (
	// IndexNaN marks a NaN lookup value: use the scale's NaN color.
	IndexNaN = -1

	// IndexEmpty marks a lookup against an empty threshold list: no data.
	IndexEmpty = -2
)
