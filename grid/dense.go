package grid

// AssembleDense builds a Grid from row-major cell data. Row order is
// preserved (row index = input index); every row shorter than the longest
// one is right-padded with nil, and longer rows are never truncated. The
// input is copied into fresh cells, never retained.
//
// An empty input yields a grid with zero rows and the documented default
// width of 1 (mirroring sparse sizing, where an empty input implies 1×1).
// Complexity: O(H×W) time and memory.
func AssembleDense(rows [][]Datum) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if len(rows) == 0 {
		width = 1
	}

	cells := make([][]*Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]*Cell, width)
		for c, d := range row {
			cells[r][c] = &Cell{Value: d.Value, Message: d.Message, Row: r, Col: c}
		}
	}

	return &Grid{Height: len(rows), Width: width, Cells: cells}
}
