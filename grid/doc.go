// Package grid assembles heterogeneous 2D input — dense row matrices or
// sparse positioned entries — into one rectangular grid of optional cells,
// then resolves every position to a concrete color through a scale.Scale.
//
// What:
//
//   - Grid wraps a Height×Width matrix of *Cell where nil means "no data".
//   - AssembleDense pads ragged rows to the longest row; nothing is ever
//     truncated.
//   - AssembleSparse places (row, col, value) entries, sizing the grid from
//     the maximum observed coordinate or from an explicit WithSize; entries
//     outside an explicit size are silently clipped, and entries sharing a
//     position follow last-write-wins.
//   - Grid.Resolve maps every position through a scale: present cells get
//     Resolve(value), absent ones the scale's empty color, and the hovered
//     cell can be darkened at resolve time.
//
// Why:
//
//   - Heatmap backends: the consumer (HTML table, terminal, raster) only
//     walks a fully-populated ResolvedGrid and paints.
//   - Sparse telemetry: scattered samples become a dense, renderable grid.
//
// Coordinate policy:
//
//	Coordinates are used as given. The legacy origin normalization
//	(subtracting the minimum observed row/column) is available behind the
//	explicit WithOriginShift option; the two policies never mix silently.
//
// Selection:
//
//	Hover state is an explicit value, not package state: Hover(r, c)
//	produces a selection, Leave() clears it, and the caller re-resolves
//	the grid on every change since darkening happens at resolve time.
//
// Complexity:
//
//   - AssembleDense:  O(H×W) time and memory.
//   - AssembleSparse: O(E + H×W) time, O(H×W) memory.
//   - Grid.Resolve:   O(H×W).
//
// Errors:
//
//   - ErrInvalidSize: an explicit size with a negative height or width.
package grid
