// Package grid generates forced-distribution Q-sort layouts: given a
// symmetric integer value range and a fixed total number of items, it
// allots response slots to each column so the counts form a discretized
// bell curve that sums exactly to the requested total.
//
// 🚀 What problem does it solve?
//
//	A Q-methodology study presents participants with, say, 36 statements
//	and a −3…+3 scale, and forces a fixed number of placements per scale
//	value.  Choosing those per-column quotas is a continuous-to-discrete
//	allocation problem: a Gaussian profile must be rounded into integers
//	without losing the exact sum, the mirror symmetry, or the single
//	central peak.
//
// ✨ Key features:
//   - two allocation variants behind one signature: Baseline (round +
//     single middle-column correction) and Refined (smoothing, edge
//     floors, largest-remainder apportionment, bell-shape repair)
//   - exact-sum guarantee: the result always sums to GridSpec.Total
//   - mirror symmetry enforced on the continuous weights before any
//     rounding, so floating-point noise can never skew the layout
//   - deterministic: identical inputs always yield identical output
//
// ⚙️ Usage:
//
//	import "github.com/qgridlab/qgrid/grid"
//
//	spec := grid.GridSpec{Min: -4, Max: 4, Total: 40}
//	dist, err := grid.Generate(spec, grid.Refined)
//	if err != nil {
//	  // handle ErrInvalidRange, ErrInvalidTotal, ErrTotalTooSmall,
//	  // or the ErrDegenerateGrid flag (single-column range)
//	}
//	fmt.Println(dist.Counts()) // e.g. [1 3 5 7 8 7 5 3 1]
//
// Complexity: O(C) time and memory per call, where C = Max-Min+1 (the
// column count, ≤ ~15 for realistic Q-sort scales).
package grid
