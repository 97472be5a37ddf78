package grid

import "errors"

// Sentinel errors for grid generation. Callers branch with errors.Is;
// Generate wraps parameter context with %w where useful.
var (
	// ErrInvalidRange indicates Min > Max: the scale is empty.
	ErrInvalidRange = errors.New("grid: min must be less than max")

	// ErrInvalidTotal indicates Total ≤ 0: nothing to distribute.
	ErrInvalidTotal = errors.New("grid: total must be a positive integer")

	// ErrTotalTooSmall indicates Total < ColumnCount: the "at least one
	// slot per column" rule cannot be honored while summing to Total.
	ErrTotalTooSmall = errors.New("grid: total is smaller than the column count")

	// ErrDegenerateGrid flags a single-column range (Min == Max). Generate
	// still returns the only possible layout, [Total], alongside this
	// sentinel; there is no bell shape to speak of on a one-point domain.
	ErrDegenerateGrid = errors.New("grid: single-column range has no bell shape")
)
