//go:build ignore

// Package main compares two strfind benchmark reports for regressions.
// Usage: go run scripts/bench-compare.go <current.json> <baseline.json>
//
// Both inputs are JSON reports produced by `strfind bench --format json`.
// A regression of more than 20% in an algorithm's overall average fails
// the comparison with exit code 1.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

const (
	// RegressionThreshold is the maximum allowed slowdown (20%).
	RegressionThreshold = 0.20

	// ImprovementThreshold for highlighting significant speedups.
	ImprovementThreshold = 0.10
)

// Row mirrors the per-algorithm row of a strfind bench JSON report.
type Row struct {
	Algorithm string          `json:"algorithm"`
	Averages  []time.Duration `json:"averages"`
	Overall   time.Duration   `json:"overall"`
}

// Report mirrors the strfind bench JSON report.
type Report struct {
	Combinations []string `json:"combinations"`
	Trials       int      `json:"trials"`
	Rows         []Row    `json:"rows"`
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/bench-compare.go <current.json> <baseline.json>")
		os.Exit(2)
	}

	current, err := loadReport(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load current: %v\n", err)
		os.Exit(2)
	}
	baseline, err := loadReport(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load baseline: %v\n", err)
		os.Exit(2)
	}

	base := map[string]time.Duration{}
	for _, row := range baseline.Rows {
		base[row.Algorithm] = row.Overall
	}

	regressed := false
	for _, row := range current.Rows {
		old, ok := base[row.Algorithm]
		if !ok {
			fmt.Printf("NEW        %-20s %v\n", row.Algorithm, row.Overall)
			continue
		}

		delta := float64(row.Overall-old) / float64(old)
		switch {
		case delta > RegressionThreshold:
			regressed = true
			fmt.Printf("REGRESSED  %-20s %v -> %v (%+.1f%%)\n", row.Algorithm, old, row.Overall, delta*100)
		case delta < -ImprovementThreshold:
			fmt.Printf("IMPROVED   %-20s %v -> %v (%+.1f%%)\n", row.Algorithm, old, row.Overall, delta*100)
		default:
			fmt.Printf("OK         %-20s %v -> %v (%+.1f%%)\n", row.Algorithm, old, row.Overall, delta*100)
		}
	}

	if regressed {
		os.Exit(1)
	}
}

func loadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &r, nil
}
