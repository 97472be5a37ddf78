package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/qgridlab/qgrid/analysis"
	"github.com/qgridlab/qgrid/grid"
)

// Run sweeps the generate→analyze→validate pipeline over every
// (range, total) combination, in input order: each range r expands to the
// symmetric spec {Min: -r, Max: +r, Total: total}. One Result row is
// appended per combination.
//
// Scheduling: between iterations Run checks ctx and, if Options.Pause is
// positive, sleeps that long, a courtesy to interactive hosts rather than a
// correctness requirement. On cancellation the rows produced so far are
// returned together with ctx.Err(); a sweep can be abandoned at any
// iteration boundary because no component holds state across calls.
//
// Errors: a combination whose spec is rejected by grid.Generate (for
// example total < column count, or range 0) aborts the sweep and returns
// the partial report with the generation error wrapped with the offending
// pair. Sweeps are diagnostics, and a broken plan should be loud.
//
// Complexity: O(R·T·C) time, O(R·T) memory for the report.
func Run(ctx context.Context, ranges, totals []int, variant grid.Variant, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(ranges)*len(totals))

	for _, r := range ranges {
		for _, total := range totals {
			if err := yield(ctx, opts.Pause); err != nil {
				return results, err
			}

			spec := grid.GridSpec{Min: -r, Max: r, Total: total}
			dist, err := grid.Generate(spec, variant)
			if err != nil {
				return results, fmt.Errorf("sweep: range=%d total=%d: %w", r, total, err)
			}

			results = append(results, Result{
				Spec:         spec,
				Distribution: dist,
				Validation:   analysis.Validate(dist, total),
			})
		}
	}

	return results, nil
}

// yield observes cancellation and optionally pauses, returning ctx.Err()
// as soon as the context is done.
func yield(ctx context.Context, pause time.Duration) error {
	if pause <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := time.NewTimer(pause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
