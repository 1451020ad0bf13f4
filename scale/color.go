// SPDX-License-Identifier: MIT

package scale

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA quad with 8-bit channels. The zero value is fully
// transparent black; constructors in this module default A to 255.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque Color from three channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA converts c to the equivalent image/color value
// (non-alpha-premultiplied, matching the channel layout here).
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBString renders c in the exact form "rgb(R, G, B)" with integer
// channels 0–255. Alpha is not rendered.
func RGBString(c Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders c as "#rrggbb" lowercase. Alpha is not rendered.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Darken multiplies each RGB channel by factor, flooring to integer.
// factor=1 is the identity, factor=0 yields black; alpha is untouched.
// Factors outside [0,1] are clamped.
// Complexity: O(1).
func Darken(c Color, factor float64) Color {
	if factor < 0 || math.IsNaN(factor) {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}

	// float→uint8 conversion truncates, which is the floor for
	// non-negative channel products.
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lerp linearly interpolates every channel (alpha included) between a and b:
// channel = round(a + (b-a)*t), clamped to [0,255]. t may lie outside [0,1];
// the clamp keeps the result a valid color.
// Complexity: O(1).
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

// lerpChannel interpolates one 8-bit channel. A NaN factor over identical
// endpoints (0·±Inf) must still produce the endpoint, hence the NaN branch.
func lerpChannel(a, b uint8, t float64) uint8 {
	f := math.Round(float64(a) + (float64(b)-float64(a))*t)
	switch {
	case math.IsNaN(f):
		return a
	case f < 0:
		return 0
	case f > 255:
		return 255
	}

	return uint8(f)
}
