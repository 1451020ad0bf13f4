package grid

// AssembleSparse builds a Grid from positioned entries.
//
// Sizing: without WithSize the grid spans max(Row)+1 × max(Col)+1 over
// all entries, defaulting to 1×1 when there are none. With WithSize the
// dimensions are used as given and entries outside them are silently
// dropped (clipping); a negative dimension fails fast with ErrInvalidSize.
//
// Placement: coordinates are used as given unless WithOriginShift is set,
// in which case the minimum observed row and column are subtracted first.
// Entries sharing a position follow last-write-wins in iteration order —
// an allowed outcome, not an error. Negative coordinates (possible only
// without origin shifting) are clipped like any other out-of-bounds entry.
// Complexity: O(E + H×W) time, O(H×W) memory.
func AssembleSparse(entries []Entry, opts ...SparseOption) (*Grid, error) {
	o := gatherSparseOptions(opts)
	if o.hasSize && (o.height < 0 || o.width < 0) {
		return nil, ErrInvalidSize
	}

	shiftR, shiftC := 0, 0
	if o.originShift && len(entries) > 0 {
		shiftR, shiftC = entries[0].Row, entries[0].Col
		for _, e := range entries[1:] {
			if e.Row < shiftR {
				shiftR = e.Row
			}
			if e.Col < shiftC {
				shiftC = e.Col
			}
		}
	}

	height, width := o.height, o.width
	if !o.hasSize {
		height, width = 1, 1
		for _, e := range entries {
			if r := e.Row - shiftR + 1; r > height {
				height = r
			}
			if c := e.Col - shiftC + 1; c > width {
				width = c
			}
		}
	}

	cells := make([][]*Cell, height)
	for r := range cells {
		cells[r] = make([]*Cell, width)
	}
	for _, e := range entries {
		r, c := e.Row-shiftR, e.Col-shiftC
		if r < 0 || r >= height || c < 0 || c >= width {
			continue // clip
		}
		cells[r][c] = &Cell{Value: e.Value, Message: e.Message, Row: r, Col: c}
	}

	return &Grid{Height: height, Width: width, Cells: cells}, nil
}
