// Package qgrid is a toolkit for building and auditing forced-distribution
// Q-sort response grids: the symmetric "bell" layouts Q-methodology studies
// use to force participants to rank a fixed number of items along a scale.
//
// 🚀 What is a forced-distribution grid?
//
//	Given a symmetric value range (say −4…+4) and a fixed number of items
//	(say 40), a study needs to decide how many response slots each column
//	gets: few at the extremes, most in the middle, summing exactly to the
//	item count.  qgrid turns that continuous bell shape into an exact
//	integer layout and proves the result still looks like a bell.
//
// ✨ What the module provides:
//   - grid/     — GridSpec & Distribution value types plus the generator
//     (two interchangeable allocation variants: Baseline and Refined)
//   - analysis/ — structural facts (symmetry, unimodality, peak, variance)
//     and a rule-based validator with a 0–100 quality score
//   - sweep/    — a context-aware harness that compares variants across a
//     cartesian grid of (range, total) combinations
//   - cmd/qgridsweep — batch CLI front-end over the sweep harness
//
// Quick example:
//
//	spec := grid.GridSpec{Min: -3, Max: 3, Total: 36}
//	dist, err := grid.Generate(spec, grid.Refined)
//	if err != nil {
//	  // ErrInvalidRange / ErrInvalidTotal / ErrTotalTooSmall / ErrDegenerateGrid
//	}
//	report := analysis.Validate(dist, spec.Total)
//	fmt.Println(report.Score, report.Issues)
//
// Every component is a pure function over small immutable values: no
// randomness, no I/O, no shared state, safe to call from any goroutine.
package qgrid
