// Package analysis result types: structural facts about a distribution
// and the validator's scored verdict.
package analysis

// Facts is a read-only structural summary of a Distribution, computed
// fresh on every Analyze call, never cached or mutated.
type Facts struct {
	// CenterIndex is the middle column index, ColumnCount/2.
	CenterIndex int
	// CenterValue is the slot count at CenterIndex.
	CenterValue int
	// EdgeValues holds the first and last slot counts, in that order.
	EdgeValues [2]int
	// IsSymmetric reports whether every column mirrors its counterpart.
	IsSymmetric bool
	// IsBellShaped reports the three-condition bell test: non-decreasing
	// up to the center, non-increasing after it, and a center strictly
	// above both edges. A central plateau that still clears the edges
	// counts; a flat line does not.
	IsBellShaped bool
	// PeakPosition is the index of the first maximum (lowest index wins
	// ties; an off-center peak is itself a validation failure).
	PeakPosition int
	// Variance is the population variance of the counts (divide by C,
	// not C-1: the sequence is fully observed, not a sample).
	Variance float64
}

// ValidationResult is the validator's verdict for one (Distribution,
// total) pair. Purely a function of its inputs.
type ValidationResult struct {
	// IsValid is true iff Issues is empty.
	IsValid bool
	// Score is the rubric score in [0,100].
	Score int
	// Issues lists one human-readable message per failed rubric rule,
	// in rubric order.
	Issues []string
}

// Deduction rubric: independent, additive penalties applied from a
// starting score of 100 and clamped at zero.
const (
	maxScore         = 100
	symmetryPenalty  = 25
	bellShapePenalty = 35
	peakPenalty      = 20
	centerPenalty    = 20
)

// Issue messages for the two parameterless rubric rules; the peak and
// center rules interpolate their positions/values in validate.go.
const (
	msgNotSymmetric = "Distribution is not symmetric"
	msgNotBellCurve = "Distribution does not follow bell curve shape"
)
