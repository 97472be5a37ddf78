package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/qgridlab/qgrid/grid"
	"github.com/qgridlab/qgrid/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadPlan_Valid verifies a well-formed YAML plan round-trips.
func TestLoadPlan_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ranges: [2, 3]\ntotals: [20, 25]\nvariant: refined\n"), 0o644))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, Plan{Ranges: []int{2, 3}, Totals: []int{20, 25}, Variant: "refined"}, plan)
}

// TestLoadPlan_DefaultVariant verifies the variant defaults to refined
// when the plan omits it.
func TestLoadPlan_DefaultVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ranges: [4]\ntotals: [40]\n"), 0o644))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "refined", plan.Variant)
}

// TestLoadPlan_Invalid covers missing files, malformed YAML and empty
// sweep axes.
func TestLoadPlan_Invalid(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing plan file must error")

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("ranges: [2,\n"), 0o644))
	_, err = LoadPlan(broken)
	assert.Error(t, err, "malformed YAML must error")

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("ranges: []\ntotals: [20]\n"), 0o644))
	_, err = LoadPlan(empty)
	assert.Error(t, err, "empty ranges must error")
}

// TestParseVariant covers the canonical names, their historical aliases
// and the rejection of unknown variants.
func TestParseVariant(t *testing.T) {
	for name, want := range map[string]grid.Variant{
		"baseline": grid.Baseline,
		"current":  grid.Baseline,
		"refined":  grid.Refined,
		"improved": grid.Refined,
	} {
		got, err := parseVariant(name)
		require.NoError(t, err, "variant %q", name)
		assert.Equal(t, want, got, "variant %q", name)
	}

	_, err := parseVariant("bogus")
	assert.Error(t, err, "unknown variant must error")
}

// TestRenderReport verifies the table carries one line per sweep row
// with its score and layout.
func TestRenderReport(t *testing.T) {
	rows, err := sweep.Run(context.Background(), []int{2}, []int{20}, grid.Refined, sweep.DefaultOptions())
	require.NoError(t, err)

	out := renderReport(rows)
	assert.Contains(t, out, "DISTRIBUTION")
	assert.Contains(t, out, "[2 5 6 5 2]")
	assert.Contains(t, out, "100")
}
