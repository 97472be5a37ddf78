// Package grid validation helpers enforcing the GridSpec parameter
// contract before any Gaussian math runs.
package grid

import "fmt"

// validateSpec checks the GridSpec preconditions in rejection order:
// range first, then total positivity, then total-vs-columns feasibility.
// The single-column (Min == Max) case is not rejected here; Generate
// handles it as a flagged degenerate layout.
//
// Complexity: O(1) time and space.
func validateSpec(s GridSpec) error {
	if s.Min > s.Max {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, s.Min, s.Max)
	}
	if s.Total <= 0 {
		return fmt.Errorf("%w: total=%d", ErrInvalidTotal, s.Total)
	}
	if cols := s.ColumnCount(); s.Total < cols {
		return fmt.Errorf("%w: total=%d columns=%d", ErrTotalTooSmall, s.Total, cols)
	}

	return nil
}
