// Package grid: functional configuration for sparse assembly and grid
// resolution. Defaults are the single source of truth below; option
// constructors panic only on nonsensical values (programmer error) —
// data-dependent validation (negative explicit size) surfaces as an
// error from AssembleSparse instead.
package grid

import "math"

// DefaultDarkenFactor is the multiplier applied to the hovered cell's
// color when darken-on-select is enabled.
const DefaultDarkenFactor = 0.7

// Internal panic messages (no magic strings at call sites).
const (
	panicDarkenFactorInvalid = "grid: WithDarkenFactor: factor must be within [0,1]"
)

// SparseOption mutates sparse-assembly settings.
type SparseOption func(*sparseOptions)

// sparseOptions stores the effective sparse-assembly configuration.
type sparseOptions struct {
	hasSize       bool
	height, width int
	originShift   bool
}

// gatherSparseOptions applies opts over the defaults: implied size,
// coordinates as given.
func gatherSparseOptions(opts []SparseOption) sparseOptions {
	var o sparseOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSize fixes the output dimensions to height×width instead of sizing
// from the maximum observed coordinate. Entries outside the fixed bounds
// are silently dropped. Negative dimensions are rejected by
// AssembleSparse with ErrInvalidSize: size often comes straight from
// caller configuration, so it fails fast as data validation, not a panic.
func WithSize(height, width int) SparseOption {
	return func(o *sparseOptions) {
		o.hasSize = true
		o.height, o.width = height, width
	}
}

// WithOriginShift subtracts the minimum observed row and column from
// every entry before placement, so sparse data need not start at (0,0).
// This is the legacy normalization policy; off by default, and never
// combined implicitly with as-given coordinates.
func WithOriginShift() SparseOption {
	return func(o *sparseOptions) { o.originShift = true }
}

// ResolveOption mutates grid-resolution settings.
type ResolveOption func(*resolveOptions)

// resolveOptions stores the effective resolution configuration.
type resolveOptions struct {
	darken       bool
	darkenFactor float64
}

// gatherResolveOptions applies opts over the defaults: darkening off,
// factor DefaultDarkenFactor.
func gatherResolveOptions(opts []ResolveOption) resolveOptions {
	o := resolveOptions{darkenFactor: DefaultDarkenFactor}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDarkenOnSelect enables darkening of the selected cell's color at
// resolve time.
func WithDarkenOnSelect() ResolveOption {
	return func(o *resolveOptions) { o.darken = true }
}

// WithDarkenFactor enables darkening and overrides the factor.
// Panics when factor lies outside [0,1] (programmer error).
func WithDarkenFactor(factor float64) ResolveOption {
	if math.IsNaN(factor) || factor < 0 || factor > 1 {
		panic(panicDarkenFactorInvalid)
	}

	return func(o *resolveOptions) {
		o.darken = true
		o.darkenFactor = factor
	}
}
