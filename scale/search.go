// SPDX-License-Identifier: MIT

package scale

import (
	"math"
	"sort"
)

// LowerBoundIndex locates, in a threshold list sorted ascending, the index
// of the smallest threshold ≥ v. It is the search primitive behind
// Discrete.Resolve and is exported so its edge protocol can be tested
// directly:
//
//   - empty list         → IndexEmpty (-2)
//   - v is NaN           → IndexNaN   (-1)
//   - v ≤ first          → 0
//   - v > last           → len(thresholds)-1 (clamp: above-range values
//     take the top color)
//   - otherwise          → the index i with thresholds[i-1] < v ≤ thresholds[i]
//
// Pure and deterministic; the input is never mutated.
// Complexity: O(log n).
func LowerBoundIndex(thresholds []float64, v float64) int {
	n := len(thresholds)
	if n == 0 {
		return IndexEmpty
	}
	if math.IsNaN(v) {
		return IndexNaN
	}
	if v > thresholds[n-1] {
		return n - 1
	}

	// Classic lower bound: smallest i with thresholds[i] >= v.
	// v <= first falls out as i == 0.
	return sort.Search(n, func(i int) bool { return thresholds[i] >= v })
}
