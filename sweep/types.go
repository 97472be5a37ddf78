// Package sweep option and result types.
package sweep

import (
	"time"

	"github.com/qgridlab/qgrid/analysis"
	"github.com/qgridlab/qgrid/grid"
)

// Options configures a sweep run.
//
// Fields:
//   - Pause — cooperative delay inserted between iterations so a long
//     sweep yields the scheduler to its host. Zero (the default) still
//     checks the context at every boundary but never sleeps, the right
//     setting for batch/CLI runs.
//
// Example:
//
//	opts := sweep.DefaultOptions()
//	opts.Pause = 5 * time.Millisecond // interactive host, stay polite
//	rows, err := sweep.Run(ctx, ranges, totals, grid.Refined, opts)
type Options struct {
	Pause time.Duration
}

// DefaultOptions returns Options with no inter-iteration pause.
func DefaultOptions() Options {
	return Options{Pause: 0}
}

// Result is one row of a sweep report: the spec that was swept, the
// distribution it generated, and the validator's verdict. Rows are
// self-contained and discarded after reporting.
type Result struct {
	// Spec is the expanded grid spec for this (range, total) combination.
	Spec grid.GridSpec
	// Distribution is the generated layout.
	Distribution grid.Distribution
	// Validation is the rubric verdict for the layout.
	Validation analysis.ValidationResult
}
