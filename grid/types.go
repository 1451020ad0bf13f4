package grid

import "github.com/katalvlaran/heatgrid/scale"

// Datum is the payload of one dense-input cell: a value plus the hover
// message attached to it. Position is implied by placement in the rows.
type Datum struct {
	Value   float64
	Message string
}

// Entry is one sparse-input cell: a Datum with an explicit position.
// Coordinates are zero-based unless the caller opts into origin shifting.
type Entry struct {
	Row, Col int
	Value    float64
	Message  string
}

// Cell is the positioned unit of data inside an assembled Grid.
// Value may be NaN; the scale decides what NaN looks like.
type Cell struct {
	Value    float64
	Message  string
	Row, Col int
}

// Grid is a rectangular Height×Width matrix of optional cells.
// Cells[r][c] == nil means "no data at (r, c)". Grids are fully
// materialized: every row has exactly Width entries, even when all of
// them are nil. Immutable by convention once assembled.
type Grid struct {
	Height, Width int
	Cells         [][]*Cell
}

// At returns the cell at (row, col), or nil when the position is out of
// bounds or holds no data.
// Complexity: O(1).
func (g *Grid) At(row, col int) *Cell {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return nil
	}

	return g.Cells[row][col]
}

// Selection marks the hovered cell of a rendered grid instance.
// A nil *Selection means nothing is hovered.
type Selection struct {
	Row, Col int
}

// Hover returns the selection for cell (row, col) — the hover-enter event
// of the two-event selection reducer.
func Hover(row, col int) *Selection {
	return &Selection{Row: row, Col: col}
}

// Leave clears the selection — the hover-leave event. Returned as a typed
// nil so both reducer events produce a *Selection.
func Leave() *Selection {
	return nil
}

// matches reports whether the selection points at (row, col).
func (s *Selection) matches(row, col int) bool {
	return s != nil && s.Row == row && s.Col == col
}

// ResolvedCell is one output position: a concrete color, the hover
// message (empty for positions without data) and a flag separating real
// data from empty-color filler.
type ResolvedCell struct {
	Color   scale.Color
	Message string
	HasData bool
}

// ResolvedGrid is the renderable output: the exact shape of the source
// grid with every position carrying a color.
type ResolvedGrid [][]ResolvedCell
