package analysis_test

import (
	"fmt"

	"github.com/qgridlab/qgrid/analysis"
	"github.com/qgridlab/qgrid/grid"
)

// ExampleValidate scores a textbook bell and a flat line side by side.
// The flat line keeps its symmetry points but loses the bell, peak and
// center deductions.
func ExampleValidate() {
	bell := grid.NewDistribution([]int{1, 2, 4, 8, 4, 2, 1})
	flat := grid.NewDistribution([]int{1, 1, 1, 1, 1, 1, 1})

	for _, d := range []grid.Distribution{bell, flat} {
		report := analysis.Validate(d, d.Sum())
		fmt.Printf("valid=%t score=%d issues=%d\n", report.IsValid, report.Score, len(report.Issues))
	}

	// Output:
	// valid=true score=100 issues=0
	// valid=false score=25 issues=3
}

// ExampleAnalyze inspects the structure of a generated layout.
func ExampleAnalyze() {
	facts := analysis.Analyze(grid.NewDistribution([]int{2, 5, 6, 5, 2}))

	fmt.Println("symmetric:", facts.IsSymmetric)
	fmt.Println("bell:     ", facts.IsBellShaped)
	fmt.Println("peak:     ", facts.PeakPosition)

	// Output:
	// symmetric: true
	// bell:      true
	// peak:      2
}
