package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a repeatable sweep description loaded from YAML:
//
//	ranges: [2, 3, 4]
//	totals: [20, 40, 60]
//	variant: refined
type Plan struct {
	// Ranges lists the scale ranges to sweep; r expands to -r…+r.
	Ranges []int `yaml:"ranges"`
	// Totals lists the item totals to sweep.
	Totals []int `yaml:"totals"`
	// Variant names the allocation variant: "baseline" or "refined".
	Variant string `yaml:"variant"`
}

// LoadPlan reads and validates a YAML sweep plan.
func LoadPlan(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read sweep plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return Plan{}, fmt.Errorf("parse sweep plan %s: %w", path, err)
	}

	if len(plan.Ranges) == 0 || len(plan.Totals) == 0 {
		return Plan{}, fmt.Errorf("sweep plan %s: ranges and totals must be non-empty", path)
	}
	if plan.Variant == "" {
		plan.Variant = "refined"
	}

	return plan, nil
}
