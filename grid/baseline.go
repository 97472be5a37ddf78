package grid

import "math"

// allocateBaseline converts proportions to integer counts the crude way:
// round each proportional share (with a floor of one slot per column),
// then absorb the entire rounding leftover, positive or negative, into
// the single middle column. If the leftover would drive the middle column
// negative it is clamped at zero and the residual deficit drains outward
// from the center, so the exact-sum and non-negativity guarantees hold
// even in extreme (range, total) corners.
//
// The middle column can end up visibly distorted for small totals or wide
// grids; Generate's finishing passes restore symmetry and the central
// peak afterwards.
//
// Complexity: O(C) time, O(C) memory.
func allocateBaseline(props []float64, total int) []int {
	cols := len(props)
	cells := make([]int, cols)

	allocated := 0
	for i, p := range props {
		c := int(math.Round(float64(total) * p))
		if c < 1 {
			c = 1
		}
		cells[i] = c
		allocated += c
	}

	mid := cols / 2
	cells[mid] += total - allocated
	if cells[mid] < 0 {
		deficit := -cells[mid]
		cells[mid] = 0
		drainOutward(cells, mid, deficit)
	}

	return cells
}
