// Package palette supplies ready-made inputs for the scale package:
// parsed hex colors, built-in hue ramps, perceptually even gradients and
// data-driven breakpoint generators.
//
// What:
//
//   - Hex / MustHex: "#rrggbb" parsing on top of go-colorful.
//   - Heat, BlueRed, Grayscale, Spectral: ordered color arrays ready for
//     scale.NewContinuous or the breakpoint generators.
//   - HCL: gradient stops blended in HCL space, so perceived lightness
//     changes evenly — useful for generating palette stops; resolve-time
//     interpolation stays the scale package's exact RGB arithmetic.
//   - QuantileBreakpoints / LinearBreakpoints: turn a color array into a
//     discrete breakpoint list, thresholded either at empirical quantiles
//     of observed data or evenly across a fixed range.
//
// Why:
//
//   - Quantile thresholds give every color roughly equal cell counts on
//     skewed data, where linear thresholds would starve most bands.
//
// Errors:
//
//   - ErrNoColors: a generator was handed an empty color array.
//   - ErrNoValues: quantile generation over data without finite values.
//   - ErrBadRange: linear generation over an empty or non-finite range.
//   - ErrTooFewSteps: an HCL gradient needs at least its two endpoints.
package palette
