package palette_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatgrid/palette"
	"github.com/katalvlaran/heatgrid/scale"
)

// TestHex parses full-form literals and round-trips through scale.Hex.
func TestHex(t *testing.T) {
	c, err := palette.Hex("#0a141e")
	require.NoError(t, err)
	require.Equal(t, scale.RGB(10, 20, 30), c)
	require.Equal(t, "#0a141e", scale.Hex(c))

	_, err = palette.Hex("not-a-color")
	require.Error(t, err)
}

// TestMustHex panics on invalid literals and parses valid ones.
func TestMustHex(t *testing.T) {
	require.Equal(t, scale.RGB(255, 0, 0), palette.MustHex("#ff0000"))
	require.Panics(t, func() { palette.MustHex("#zzzzzz") })
}

// TestBuiltinPalettes sanity-checks the shipped ramps: non-empty, with
// the documented endpoints.
func TestBuiltinPalettes(t *testing.T) {
	require.Equal(t, scale.RGB(0, 0, 0), palette.Heat[0])
	require.Equal(t, scale.RGB(255, 255, 255), palette.Heat[len(palette.Heat)-1])

	require.Len(t, palette.Spectral, 11)
	require.Equal(t, palette.MustHex("#9e0142"), palette.Spectral[0])
	require.Equal(t, palette.MustHex("#5e4fa2"), palette.Spectral[10])

	require.Equal(t, scale.RGB(0, 0, 255), palette.BlueRed[0])
	require.Len(t, palette.Grayscale, 2)
}

// TestBuiltinPalettes_WorkAsContinuousScale wires a shipped ramp through
// scale construction end to end.
func TestBuiltinPalettes_WorkAsContinuousScale(t *testing.T) {
	s, err := scale.NewContinuous(palette.Grayscale, scale.WithRange(0, 10))
	require.NoError(t, err)
	require.Equal(t, scale.RGB(0, 0, 0), s.Resolve(0))
	require.Equal(t, scale.RGB(255, 255, 255), s.Resolve(10))
}
