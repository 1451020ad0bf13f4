package palette

import "errors"

// Sentinel errors for palette generators. Matched via errors.Is.
var (
	// ErrNoColors indicates an empty color array where at least one color
	// is required.
	ErrNoColors = errors.New("palette: at least one color required")

	// ErrNoValues indicates quantile generation over data with no finite
	// values (empty, or all NaN/±Inf).
	ErrNoValues = errors.New("palette: no finite values to take quantiles of")

	// ErrBadRange indicates a linear range that is non-finite or not
	// strictly increasing.
	ErrBadRange = errors.New("palette: range must be finite with min < max")

	// ErrTooFewSteps indicates an HCL gradient request with fewer than
	// two stops.
	ErrTooFewSteps = errors.New("palette: gradient needs at least two steps")
)
