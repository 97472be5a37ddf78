// Package sweep drives the generate→analyze→validate pipeline across a
// cartesian grid of (range, total) combinations to compare allocation
// variants at many grid sizes.
//
// 🚀 What is it for?
//
//	Exploratory comparison, not production traffic: pick a set of scale
//	ranges (r expands to Min=−r, Max=+r) and item totals, pick a Variant,
//	and get one validated Result row per combination: a quick answer to
//	"does the refined allocator still hold the bell at −5…+5 with 60
//	items?".
//
// ✨ Key features:
//   - cartesian sweep over ranges × totals, results in input order
//   - cooperative scheduling: a context check (and an optional pause)
//     between iterations keeps a long sweep from monopolizing a
//     single-threaded host; a batch CLI can leave the pause at zero
//   - clean abandonment: cancellation at any iteration boundary returns
//     the rows produced so far with ctx.Err(); no component holds state
//     across calls, so nothing is left inconsistent
//
// ⚙️ Usage:
//
//	import "github.com/qgridlab/qgrid/sweep"
//
//	rows, err := sweep.Run(ctx, []int{2, 3, 4}, []int{20, 40},
//	  grid.Refined, sweep.DefaultOptions())
//	for _, row := range rows {
//	  fmt.Println(row.Spec, row.Validation.Score)
//	}
//
// Complexity: O(R·T·C) time for R ranges, T totals, C columns.
package sweep
