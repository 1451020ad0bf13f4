package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/heatgrid/scale"
)

// Hex parses a "#rrggbb" (or "#rgb") literal into a scale.Color.
func Hex(s string) (scale.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return scale.Color{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}

	return fromColorful(c), nil
}

// MustHex is Hex for compile-time palette literals; it panics on an
// invalid literal (programmer error).
func MustHex(s string) scale.Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}

	return c
}

// Built-in ramps, ordered cold→hot (or low→high), ready for
// scale.NewContinuous or the breakpoint generators.
var (
	// Heat runs black→red→yellow→white, the classic thermal ramp.
	Heat = []scale.Color{
		MustHex("#000000"),
		MustHex("#ff0000"),
		MustHex("#ffff00"),
		MustHex("#ffffff"),
	}

	// BlueRed is a diverging ramp through white, for data centered on a
	// meaningful midpoint.
	BlueRed = []scale.Color{
		MustHex("#0000ff"),
		MustHex("#ffffff"),
		MustHex("#ff0000"),
	}

	// Grayscale runs black→white.
	Grayscale = []scale.Color{
		MustHex("#000000"),
		MustHex("#ffffff"),
	}

	// Spectral is the 11-class ColorBrewer spectral ramp.
	Spectral = []scale.Color{
		MustHex("#9e0142"),
		MustHex("#d53e4f"),
		MustHex("#f46d43"),
		MustHex("#fdae61"),
		MustHex("#fee090"),
		MustHex("#ffffbf"),
		MustHex("#e6f598"),
		MustHex("#abdda4"),
		MustHex("#66c2a5"),
		MustHex("#3288bd"),
		MustHex("#5e4fa2"),
	}
)

// fromColorful converts a colorful color (channels in [0,1]) to the 8-bit
// layout, rounding each channel.
func fromColorful(c colorful.Color) scale.Color {
	return scale.RGB(channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// toColorful converts an 8-bit color into colorful's [0,1] channel space.
func toColorful(c scale.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// channelByte rounds a [0,1] channel to its 8-bit value, clamping strays
// from out-of-gamut blends.
func channelByte(f float64) uint8 {
	v := math.Round(f * 255)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}

	return uint8(v)
}
