package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/qgridlab/qgrid/sweep"
)

// Report table styling.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = cellStyle.Foreground(lipgloss.Color("2"))
	badStyle    = cellStyle.Foreground(lipgloss.Color("1"))
)

// renderReport renders sweep rows as a bordered comparison table.
func renderReport(rows []sweep.Result) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RANGE", "TOTAL", "DISTRIBUTION", "SCORE", "VALID", "ISSUES").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 {
				if rows[row].Validation.IsValid {
					return okStyle
				}

				return badStyle
			}

			return cellStyle
		})

	for _, row := range rows {
		t.Row(
			fmt.Sprintf("%d…%+d", row.Spec.Min, row.Spec.Max),
			strconv.Itoa(row.Spec.Total),
			fmt.Sprint(row.Distribution.Counts()),
			strconv.Itoa(row.Validation.Score),
			strconv.FormatBool(row.Validation.IsValid),
			strings.Join(row.Validation.Issues, "; "),
		)
	}

	return t.Render()
}
