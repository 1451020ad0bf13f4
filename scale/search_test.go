package scale_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heatgrid/scale"
)

//----------------------------------------------------------------------------//
// LowerBoundIndex edge protocol
//----------------------------------------------------------------------------//

// TestLowerBoundIndex_Sentinels verifies the empty-list and NaN sentinels.
func TestLowerBoundIndex_Sentinels(t *testing.T) {
	for _, v := range []float64{0, -1, 42.5, math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := scale.LowerBoundIndex(nil, v); got != scale.IndexEmpty {
			t.Errorf("LowerBoundIndex(nil, %v) = %d; want %d", v, got, scale.IndexEmpty)
		}
	}

	nonEmpty := []float64{1, 2, 3}
	if got := scale.LowerBoundIndex(nonEmpty, math.NaN()); got != scale.IndexNaN {
		t.Errorf("LowerBoundIndex(nonEmpty, NaN) = %d; want %d", got, scale.IndexNaN)
	}
}

// TestLowerBoundIndex_Cases pins the exact off-by-one convention on
// literal threshold lists.
func TestLowerBoundIndex_Cases(t *testing.T) {
	cases := []struct {
		name       string
		thresholds []float64
		v          float64
		want       int
	}{
		{"BelowRange", []float64{2.3, 3.4, 4.5}, 1.0, 0},
		{"AboveRange", []float64{2.3, 3.4, 4.5}, 27.0, 2},
		{"BetweenLastPair", []float64{2.3, 3.4, 4.5}, 4.0, 2},
		{"ExactLast", []float64{2.3, 3.4, 4.5}, 4.5, 2},
		{"MiddleBucket", []float64{2.3, 3.4, 4.5}, 3.0, 1},
		{"ExactFirstNegative", []float64{-2.3, 0, 1, 124.5}, -2.3, 0},
		{"TwoElements", []float64{0, 5}, 3.0, 1},
		{"MinusInfClampsLow", []float64{2.3, 3.4, 4.5}, math.Inf(-1), 0},
		{"PlusInfClampsHigh", []float64{2.3, 3.4, 4.5}, math.Inf(1), 2},
		{"SingleBelow", []float64{7}, -100, 0},
		{"SingleAbove", []float64{7}, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scale.LowerBoundIndex(tc.thresholds, tc.v); got != tc.want {
				t.Errorf("LowerBoundIndex(%v, %v) = %d; want %d", tc.thresholds, tc.v, got, tc.want)
			}
		})
	}
}

// TestLowerBoundIndex_Thousand pins the convention on a long list:
// thresholds 1..1000, value 20 lands on index 19 (thresholds[19] == 20).
func TestLowerBoundIndex_Thousand(t *testing.T) {
	thresholds := make([]float64, 1000)
	for i := range thresholds {
		thresholds[i] = float64(i + 1)
	}
	if got := scale.LowerBoundIndex(thresholds, 20); got != 19 {
		t.Errorf("LowerBoundIndex(1..1000, 20) = %d; want 19", got)
	}
}

// TestLowerBoundIndex_NoMutation verifies the input list is left intact.
func TestLowerBoundIndex_NoMutation(t *testing.T) {
	thresholds := []float64{5, 1, 9} // deliberately unsorted: still untouched
	_ = scale.LowerBoundIndex([]float64{1, 5, 9}, 4)
	want := []float64{5, 1, 9}
	for i := range thresholds {
		if thresholds[i] != want[i] {
			t.Fatalf("input mutated at %d: %v", i, thresholds)
		}
	}
}
