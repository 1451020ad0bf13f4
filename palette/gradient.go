package palette

import (
	"github.com/katalvlaran/heatgrid/scale"
)

// HCL generates steps gradient stops from one color to another, blended
// in HCL space so perceived lightness changes evenly across the ramp.
// The first and last stops are exactly from and to. steps < 2 returns
// ErrTooFewSteps.
// Complexity: O(steps).
func HCL(from, to scale.Color, steps int) ([]scale.Color, error) {
	if steps < 2 {
		return nil, ErrTooFewSteps
	}

	a, b := toColorful(from), toColorful(to)
	out := make([]scale.Color, steps)
	out[0] = from
	out[steps-1] = to
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		out[i] = fromColorful(a.BlendHcl(b, t).Clamped())
	}

	return out, nil
}
