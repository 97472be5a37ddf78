package analysis_test

import (
	"testing"

	"github.com/qgridlab/qgrid/analysis"
	"github.com/qgridlab/qgrid/grid"
	"github.com/stretchr/testify/assert"
)

// TestAnalyze_BellGrid verifies every fact on a textbook bell layout.
func TestAnalyze_BellGrid(t *testing.T) {
	facts := analysis.Analyze(grid.NewDistribution([]int{1, 2, 4, 8, 4, 2, 1}))

	assert.Equal(t, 3, facts.CenterIndex, "seven columns center at index 3")
	assert.Equal(t, 8, facts.CenterValue)
	assert.Equal(t, [2]int{1, 1}, facts.EdgeValues)
	assert.True(t, facts.IsSymmetric, "mirror pairs all match")
	assert.True(t, facts.IsBellShaped, "monotone halves and dominant center")
	assert.Equal(t, 3, facts.PeakPosition, "peak sits at the center")
	assert.InDelta(t, 5.265306, facts.Variance, 1e-6, "population variance, divisor C")
}

// TestAnalyze_FlatLine verifies that a flat distribution is symmetric but
// fails the bell test on the center-above-edges condition, and that its
// first-maximum peak is index 0.
func TestAnalyze_FlatLine(t *testing.T) {
	facts := analysis.Analyze(grid.NewDistribution([]int{1, 1, 1, 1, 1, 1, 1}))

	assert.True(t, facts.IsSymmetric, "a flat line mirrors itself")
	assert.False(t, facts.IsBellShaped, "flat center does not exceed the edges")
	assert.Equal(t, 0, facts.PeakPosition, "ties break toward the lowest index")
	assert.Zero(t, facts.Variance, "no spread in a flat line")
}

// TestAnalyze_CentralPlateau verifies the plateau rule: a flat top that
// still clears the edges is bell-shaped, but its first maximum sits left
// of the center index.
func TestAnalyze_CentralPlateau(t *testing.T) {
	facts := analysis.Analyze(grid.NewDistribution([]int{1, 3, 3, 1}))

	assert.True(t, facts.IsBellShaped, "plateau above the edges still counts as a bell")
	assert.Equal(t, 2, facts.CenterIndex)
	assert.Equal(t, 1, facts.PeakPosition, "first maximum wins the tie")
}

// TestAnalyze_Asymmetric verifies symmetry and monotonicity detection on
// a lopsided layout.
func TestAnalyze_Asymmetric(t *testing.T) {
	facts := analysis.Analyze(grid.NewDistribution([]int{1, 3, 2, 5, 2, 2, 1}))

	assert.False(t, facts.IsSymmetric)
	assert.False(t, facts.IsBellShaped, "the 3→2 dip breaks the rising half")
	assert.Equal(t, 3, facts.PeakPosition)
}

// TestAnalyze_Idempotent verifies referential transparency: repeated
// analysis of the same distribution yields identical facts.
func TestAnalyze_Idempotent(t *testing.T) {
	d := grid.NewDistribution([]int{2, 5, 6, 5, 2})

	first := analysis.Analyze(d)
	second := analysis.Analyze(d)
	assert.Equal(t, first, second, "Analyze must be a pure function")
}

// TestAnalyze_Empty verifies that an empty distribution yields zero facts
// rather than panicking.
func TestAnalyze_Empty(t *testing.T) {
	facts := analysis.Analyze(grid.NewDistribution(nil))

	assert.Equal(t, analysis.Facts{}, facts)
}
