// Package grid defines the core value types shared by the generator:
// GridSpec (the requested layout), Distribution (the resulting per-column
// slot counts) and Variant (the allocation algorithm selector).
package grid

// Variant selects the slot-allocation algorithm used by Generate.
// Both variants share the same Gaussian scaffolding and differ only in
// how continuous proportions become integer counts.
type Variant int

const (
	// Baseline rounds each proportional share and dumps the entire
	// leftover (positive or negative) into the middle column. Crude but
	// simple; the middle column absorbs all rounding distortion.
	Baseline Variant = iota

	// Refined uses a steeper curve for small grids, 3-point smoothing,
	// minimum edge proportions and largest-remainder apportionment,
	// followed by a bell-shape repair pass.
	Refined
)

// String returns the canonical variant name, "unknown" for out-of-range values.
func (v Variant) String() string {
	switch v {
	case Baseline:
		return "baseline"
	case Refined:
		return "refined"
	default:
		return "unknown"
	}
}

// GridSpec describes a requested forced-distribution layout.
//
// Min and Max bound the symmetric value scale (Min < Max for a meaningful
// bell), and Total is the number of items the columns must sum to.
//
// Example:
//
//	spec := GridSpec{Min: -3, Max: 3, Total: 36}
//	spec.ColumnCount() // 7
//	spec.CenterIndex() // 3
type GridSpec struct {
	// Min is the lowest scale value (leftmost column), e.g. -4.
	Min int
	// Max is the highest scale value (rightmost column), e.g. +4.
	Max int
	// Total is the exact number of slots the distribution must sum to.
	Total int
}

// ColumnCount returns the number of columns the spec spans: Max-Min+1.
// Complexity: O(1).
func (s GridSpec) ColumnCount() int {
	return s.Max - s.Min + 1
}

// CenterIndex returns the index of the middle column, ColumnCount/2.
// For even column counts this is the upper of the two middle columns.
// Complexity: O(1).
func (s GridSpec) CenterIndex() int {
	return s.ColumnCount() / 2
}

// Distribution is an immutable ordered sequence of non-negative per-column
// slot counts; index i corresponds to scale value Min+i of the GridSpec
// that produced it. Construction and every accessor copy the underlying
// slice, so a Distribution can be shared freely across goroutines.
type Distribution struct {
	counts []int
}

// NewDistribution builds a Distribution from counts, deep-copying the
// input to guarantee immutability. Any integer sequence is accepted:
// analyzability of pathological inputs is the point of the validator.
// Complexity: O(C) time and memory.
func NewDistribution(counts []int) Distribution {
	cp := make([]int, len(counts))
	copy(cp, counts)

	return Distribution{counts: cp}
}

// Len returns the number of columns.
func (d Distribution) Len() int { return len(d.counts) }

// At returns the slot count of column i. Panics if i is out of range,
// matching slice-indexing semantics.
func (d Distribution) At(i int) int { return d.counts[i] }

// Counts returns a fresh copy of the per-column slot counts.
// Complexity: O(C).
func (d Distribution) Counts() []int {
	cp := make([]int, len(d.counts))
	copy(cp, d.counts)

	return cp
}

// Sum returns the total number of slots across all columns.
// Complexity: O(C).
func (d Distribution) Sum() int {
	total := 0
	for _, c := range d.counts {
		total += c
	}

	return total
}
