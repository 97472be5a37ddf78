// Package analysis inspects forced-distribution layouts and scores them
// against the bell-curve contract a Q-sort grid must satisfy.
//
// 🚀 What does it check?
//
//	A generated (or externally supplied) Distribution is supposed to be a
//	discretized bell: mirror-symmetric, rising to a single central peak,
//	and strictly higher at the center than at either edge.  Analyze
//	reports those structural facts; Validate turns them into a verdict.
//
// ✨ Key features:
//   - Analyze: symmetry, the three-condition bell test, first-maximum
//     peak position, and population variance of the counts
//   - Validate: a fixed deduction rubric from 100 (−25 symmetry, −35
//     bell shape, −20 off-center peak, −20 center not above edges),
//     clamped at zero, with one human-readable issue per failure
//   - both are pure functions: referentially transparent, never caching,
//     never failing on any non-negative integer sequence (pathological
//     layouts are precisely what the validator exists to report)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/qgridlab/qgrid/analysis"
//	  "github.com/qgridlab/qgrid/grid"
//	)
//
//	d := grid.NewDistribution([]int{1, 2, 4, 8, 4, 2, 1})
//	facts := analysis.Analyze(d)         // IsSymmetric, IsBellShaped, ...
//	report := analysis.Validate(d, 22)   // IsValid=true, Score=100
//
// The rubric is deliberately rule-based rather than one composite
// statistic, so every failure mode stays individually diagnosable.
//
// Complexity: O(C) time per call, C = column count.
package analysis
