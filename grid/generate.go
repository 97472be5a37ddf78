package grid

import "math"

// Gaussian-profile constants shared by the allocation variants.
const (
	// baselineSigmaDivisor sets the baseline curve width: sigma = C/3.5.
	baselineSigmaDivisor = 3.5
	// refinedSmallDivisor sets a steeper curve (sigma = C/4) for small grids.
	refinedSmallDivisor = 4.0
	// refinedLargeDivisor sets sigma = C/3.2 for wider grids.
	refinedLargeDivisor = 3.2
	// smallGridColumns is the column count at or below which the refined
	// variant switches to the steeper small-grid curve.
	smallGridColumns = 7
	// smoothKeep and smoothSpill are the 3-point smoothing kernel weights
	// applied by the refined variant to interior columns: 0.15/0.7/0.15.
	smoothKeep  = 0.7
	smoothSpill = 0.15
)

// Generate — forced-distribution slot allocation
//
// Description:
//
//	Generate converts a GridSpec into per-column slot counts shaped like a
//	discretized bell curve: few slots at the scale extremes, most in the
//	middle, summing exactly to spec.Total.
//
// Algorithm Outline (shared scaffolding):
//  1. Validate the spec (range, positive total, total ≥ column count).
//  2. Compute the real-valued center (C-1)/2 and a Gaussian weight per
//     column: w[i] = exp(-0.5·((i-center)/sigma)²).
//  3. (Refined only) smooth interior weights with a 0.15/0.7/0.15 kernel.
//  4. Average each mirror pair (i, C-1-i) so exact symmetry survives any
//     asymmetric floating-point rounding.
//  5. Normalize weights to proportions; (Refined only) floor both edge
//     proportions at 1/Total and re-normalize.
//  6. Allocate integers per the chosen Variant (see baseline.go and
//     refined.go), then run the finishing passes: a mirror-balance step
//     that restores exact pair symmetry for odd column counts, and (for
//     Baseline) a center-dominance clamp so the middle column keeps the
//     peak after leftover absorption.
//
// Guarantees for every accepted spec: sum(result) == spec.Total, every
// count ≥ 0, and for odd column counts result[i] == result[C-1-i].
// Deterministic: no randomness, no external state.
//
// Errors:
//   - ErrInvalidRange    — Min > Max.
//   - ErrInvalidTotal    — Total ≤ 0.
//   - ErrTotalTooSmall   — Total < ColumnCount.
//   - ErrDegenerateGrid  — Min == Max; the single-column layout [Total]
//     is still returned alongside the sentinel so the caller is flagged
//     rather than silently handed a one-point "bell".
//
// Complexity: O(C) time, O(C) memory (C = column count).
func Generate(spec GridSpec, variant Variant) (Distribution, error) {
	if err := validateSpec(spec); err != nil {
		return Distribution{}, err
	}

	cols := spec.ColumnCount()
	if cols == 1 {
		// One-point domain: [Total] is the only layout, flag it explicitly.
		return Distribution{counts: []int{spec.Total}}, ErrDegenerateGrid
	}

	props := proportions(cols, spec.Total, variant)

	var cells []int
	switch variant {
	case Refined:
		cells = allocateRefined(props, spec.Total)
	default:
		cells = allocateBaseline(props, spec.Total)
	}

	// Finishing passes. Mirror balance is exact only when a self-mirrored
	// middle column exists; for even column counts an odd total cannot be
	// split symmetrically at all (pairs sum even), so the residual unit
	// stays where the allocation put it.
	if cols%2 == 1 {
		mirrorBalance(cells)
		if variant == Baseline {
			raiseCenterPeak(cells, cols/2)
		}
	}

	return Distribution{counts: cells}, nil
}

// proportions computes the normalized continuous column shares for a grid
// of cols columns: Gaussian weights, optional smoothing, mirror-pair
// averaging and normalization, per the scaffolding above.
// Complexity: O(C) time and memory.
func proportions(cols, total int, variant Variant) []float64 {
	center := float64(cols-1) / 2
	sigma := sigmaFor(cols, variant)

	weights := make([]float64, cols)
	for i := range weights {
		z := (float64(i) - center) / sigma
		weights[i] = math.Exp(-0.5 * z * z)
	}

	if variant == Refined {
		smoothInterior(weights)
	}

	mirrorAverage(weights)
	normalize(weights)

	if variant == Refined {
		// Guarantee at least one slot's worth of proportion at each edge.
		floor := 1 / float64(total)
		if weights[0] < floor || weights[cols-1] < floor {
			weights[0] = math.Max(weights[0], floor)
			weights[cols-1] = math.Max(weights[cols-1], floor)
			normalize(weights)
		}
	}

	return weights
}

// sigmaFor selects the Gaussian width for the variant: Baseline always
// uses C/3.5; Refined uses the steeper C/4 for small grids (C ≤ 7) and
// C/3.2 otherwise.
func sigmaFor(cols int, variant Variant) float64 {
	if variant == Refined {
		if cols <= smallGridColumns {
			return float64(cols) / refinedSmallDivisor
		}

		return float64(cols) / refinedLargeDivisor
	}

	return float64(cols) / baselineSigmaDivisor
}

// smoothInterior applies one pass of 3-point smoothing to interior columns
// only: w[i] = 0.15·w[i-1] + 0.7·w[i] + 0.15·w[i+1] for 0 < i < C-1.
// Reads come from a snapshot of the input so the pass is order-independent.
func smoothInterior(weights []float64) {
	raw := make([]float64, len(weights))
	copy(raw, weights)
	for i := 1; i < len(weights)-1; i++ {
		weights[i] = smoothSpill*raw[i-1] + smoothKeep*raw[i] + smoothSpill*raw[i+1]
	}
}

// mirrorAverage assigns each pair (i, C-1-i) the mean of its two weights,
// making the profile exactly symmetric regardless of floating-point noise
// in the Gaussian evaluation.
func mirrorAverage(weights []float64) {
	for i, j := 0, len(weights)-1; i < j; i, j = i+1, j-1 {
		avg := (weights[i] + weights[j]) / 2
		weights[i], weights[j] = avg, avg
	}
}

// normalize scales weights in place so they sum to exactly 1.
func normalize(weights []float64) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
}

// mirrorBalance restores exact pair symmetry after integer allocation by
// lowering each unequal mirror pair to its minimum and crediting the
// freed slots to the self-mirrored middle column. Sum-preserving; only
// meaningful for odd column counts.
func mirrorBalance(cells []int) {
	cols := len(cells)
	mid := cols / 2
	for i := 0; i < mid; i++ {
		j := cols - 1 - i
		if cells[i] == cells[j] {
			continue
		}
		low := cells[i]
		if cells[j] < low {
			low = cells[j]
		}
		cells[mid] += cells[i] + cells[j] - 2*low
		cells[i], cells[j] = low, low
	}
}

// raiseCenterPeak pulls slots symmetrically from whichever mirror pair
// currently holds the maximum until the middle column dominates. Each
// round moves one slot per side into the center, so the pass terminates
// and preserves both the sum and pair symmetry.
func raiseCenterPeak(cells []int, mid int) {
	for {
		peak, at := cells[mid], mid
		for i, c := range cells {
			if c > peak {
				peak, at = c, i
			}
		}
		if at == mid {
			return
		}
		cells[at]--
		cells[len(cells)-1-at]--
		cells[mid] += 2
	}
}

// drainOutward removes deficit slots from the columns around mid, walking
// outward pair by pair and never pushing any column below zero. Used when
// leftover absorption would drive the middle column negative.
func drainOutward(cells []int, mid, deficit int) {
	for step := 1; deficit > 0; step++ {
		left, right := mid-step, mid+step
		if left < 0 && right >= len(cells) {
			return
		}
		for _, j := range [2]int{left, right} {
			if deficit == 0 || j < 0 || j >= len(cells) {
				continue
			}
			take := cells[j]
			if take > deficit {
				take = deficit
			}
			cells[j] -= take
			deficit -= take
		}
	}
}

// sumOf returns the sum of an integer slice.
func sumOf(cells []int) int {
	total := 0
	for _, c := range cells {
		total += c
	}

	return total
}
