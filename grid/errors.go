package grid

import "errors"

// Sentinel errors for grid assembly. Matched via errors.Is.
var (
	// ErrInvalidSize indicates an explicit size with negative height or width.
	ErrInvalidSize = errors.New("grid: explicit size must have height >= 0 and width >= 0")
)
