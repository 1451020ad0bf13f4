// SPDX-License-Identifier: MIT

// Package scale: sentinel error set. Algorithms return these sentinels and
// tests match them via errors.Is. No operation panics on user data; panics
// are reserved for programmer errors in option constructors.
package scale

import "errors"

var (
	// ErrNoColors is returned when a Continuous scale is constructed
	// from an empty color slice.
	ErrNoColors = errors.New("scale: continuous scale needs at least one color")
)
