package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/heatgrid/scale"
)

// Resolve maps every position of the grid to a concrete color:
//
//   - present cells go through sc.Resolve(value); when darkening is
//     enabled and the selection points at the cell, the color is darkened
//     by the configured factor,
//   - absent positions take sc.EmptyColor() and carry no message.
//
// The output has exactly the grid's shape. Each cell's color is a pure
// function of its own value, the scale and the selection — resolving is
// side-effect free and the grid is untouched, so the caller re-resolves
// on every selection change.
//
// An unranged *scale.Continuous is first bound to the grid's observed
// finite min/max (NaN and ±Inf excluded); a grid without finite values
// keeps the scale's default range.
// Complexity: O(H×W).
func (g *Grid) Resolve(sc scale.Scale, sel *Selection, opts ...ResolveOption) ResolvedGrid {
	o := gatherResolveOptions(opts)

	if cont, ok := sc.(*scale.Continuous); ok && !cont.HasRange() {
		if min, max, found := g.observedRange(); found {
			sc = cont.Ranged(min, max)
		}
	}

	out := make(ResolvedGrid, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = make([]ResolvedCell, g.Width)
		for c := 0; c < g.Width; c++ {
			cell := g.Cells[r][c]
			if cell == nil {
				out[r][c] = ResolvedCell{Color: sc.EmptyColor()}
				continue
			}
			color := sc.Resolve(cell.Value)
			if o.darken && sel.matches(r, c) {
				color = scale.Darken(color, o.darkenFactor)
			}
			out[r][c] = ResolvedCell{Color: color, Message: cell.Message, HasData: true}
		}
	}

	return out
}

// observedRange collects the grid's finite values and returns their
// min/max. found is false when no finite value exists.
// Complexity: O(H×W).
func (g *Grid) observedRange() (min, max float64, found bool) {
	values := make([]float64, 0, g.Height*g.Width)
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == nil || math.IsNaN(cell.Value) || math.IsInf(cell.Value, 0) {
				continue
			}
			values = append(values, cell.Value)
		}
	}
	if len(values) == 0 {
		return 0, 0, false
	}

	return floats.Min(values), floats.Max(values), true
}
