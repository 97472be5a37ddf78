package analysis

import (
	"fmt"

	"github.com/qgridlab/qgrid/grid"
)

// Validate scores a distribution against the bell-curve rubric, starting
// at 100 and deducting per failed rule:
//
//   - not symmetric                  −25
//   - not bell-shaped                −35
//   - peak away from the center      −20
//   - center not above both edges    −20
//
// Deductions are independent and additive; the score is clamped at zero
// and IsValid holds iff no issue fired. The declared total identifies the
// (Distribution, total) pair being judged; the rubric itself is purely
// structural, so validation of any non-negative sequence always succeeds
// in the sense of producing a verdict.
//
// Referentially transparent: repeated calls on the same inputs return
// identical results.
//
// Complexity: O(C) time.
func Validate(d grid.Distribution, total int) ValidationResult {
	facts := Analyze(d)
	score := maxScore
	var issues []string

	if !facts.IsSymmetric {
		issues = append(issues, msgNotSymmetric)
		score -= symmetryPenalty
	}
	if !facts.IsBellShaped {
		issues = append(issues, msgNotBellCurve)
		score -= bellShapePenalty
	}
	if facts.PeakPosition != facts.CenterIndex {
		issues = append(issues, fmt.Sprintf(
			"Peak is at position %d, should be at center (%d)",
			facts.PeakPosition, facts.CenterIndex))
		score -= peakPenalty
	}
	if facts.CenterValue <= max2(facts.EdgeValues[0], facts.EdgeValues[1]) {
		issues = append(issues, fmt.Sprintf(
			"Center value (%d) is not greater than edges (%v)",
			facts.CenterValue, facts.EdgeValues))
		score -= centerPenalty
	}

	if score < 0 {
		score = 0
	}

	return ValidationResult{
		IsValid: len(issues) == 0,
		Score:   score,
		Issues:  issues,
	}
}

// max2 returns the larger of two ints.
func max2(a, b int) int {
	if a > b {
		return a
	}

	return b
}
