// SPDX-License-Identifier: MIT

// Package scale maps numeric values onto colors.
//
// What:
//
//   - Color: an RGBA quad with exact integer channel arithmetic
//     (Darken floors, Lerp rounds-and-clamps).
//   - Discrete: a sorted, deduplicated list of (threshold, color)
//     breakpoints; a value resolves to the color at the smallest
//     threshold ≥ value, clamping to the top color above range.
//   - Continuous: an ordered color array interpolated linearly over a
//     numeric range [min, max]; the interpolation factor is global
//     across the whole range, not re-normalized per color pair.
//   - Both variants satisfy the Scale interface, so downstream code
//     dispatches through a single Resolve call.
//
// Why:
//
//   - Heatmaps: severity ramps, traffic-light thresholds, density shading.
//   - Dashboards: one scale shared by many grids, safe to reuse concurrently.
//
// Semantics worth knowing:
//
//   - NaN always resolves to the scale's NaN color.
//   - An empty Discrete scale resolves everything else to its empty color.
//   - ±Inf clamp to the ends; no input value is an error.
//   - LowerBoundIndex is exported: it is the search primitive behind
//     Discrete and carries sentinel results IndexEmpty (-2) and
//     IndexNaN (-1) instead of panicking.
//
// Complexity:
//
//   - Discrete.Resolve:   O(log n) binary search.
//   - Continuous.Resolve: O(1).
//   - Construction:       O(n log n) (dedup + sort).
//
// Errors:
//
//   - ErrNoColors: a Continuous scale needs at least one color.
package scale
