package analysis

import "github.com/qgridlab/qgrid/grid"

// Analyze computes the structural Facts of a distribution. Pure function:
// no side effects, no caching, identical input always yields identical
// output. Any integer sequence is analyzable; an empty distribution
// yields zero-valued Facts.
//
// Complexity: O(C) time, O(C) memory for the counts snapshot.
func Analyze(d grid.Distribution) Facts {
	counts := d.Counts()
	cols := len(counts)
	if cols == 0 {
		return Facts{}
	}

	center := cols / 2

	return Facts{
		CenterIndex:  center,
		CenterValue:  counts[center],
		EdgeValues:   [2]int{counts[0], counts[cols-1]},
		IsSymmetric:  isSymmetric(counts),
		IsBellShaped: isBellShaped(counts, center),
		PeakPosition: peakPosition(counts),
		Variance:     populationVariance(counts),
	}
}

// isSymmetric reports whether counts[i] == counts[C-1-i] for every i.
func isSymmetric(counts []int) bool {
	for i, j := 0, len(counts)-1; i < j; i, j = i+1, j-1 {
		if counts[i] != counts[j] {
			return false
		}
	}

	return true
}

// isBellShaped applies the three-condition bell test: the left half must
// be non-decreasing up to center, the right half non-increasing from
// center, and the center must strictly exceed both edges. All three must
// hold: a flat plateau at the center that clears the edges passes, a
// fully flat line fails on the edge condition.
func isBellShaped(counts []int, center int) bool {
	for i := 0; i < center; i++ {
		if counts[i] > counts[i+1] {
			return false
		}
	}
	for i := center; i < len(counts)-1; i++ {
		if counts[i] < counts[i+1] {
			return false
		}
	}

	return counts[center] > maxEdge(counts)
}

// peakPosition returns the index of the first maximum value.
func peakPosition(counts []int) int {
	at := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[at] {
			at = i
		}
	}

	return at
}

// maxEdge returns the larger of the first and last counts.
func maxEdge(counts []int) int {
	if counts[0] > counts[len(counts)-1] {
		return counts[0]
	}

	return counts[len(counts)-1]
}

// populationVariance returns Σ(c-mean)²/C. The divisor is C, not C-1: a
// distribution is a complete enumeration, not a sample.
func populationVariance(counts []int) float64 {
	n := float64(len(counts))
	mean := 0.0
	for _, c := range counts {
		mean += float64(c)
	}
	mean /= n

	variance := 0.0
	for _, c := range counts {
		dev := float64(c) - mean
		variance += dev * dev
	}

	return variance / n
}
