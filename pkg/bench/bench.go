// Package bench measures and compares the substring-search algorithms on
// fixed (text, pattern) combinations.
//
// Trials run strictly sequentially so timings are not contaminated by
// scheduling noise; inputs are never mutated between trials.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/strfind/strfind/pkg/match"
)

// DefaultTrials is how often each (algorithm, combination) pair runs.
const DefaultTrials = 100

// Combination is one named (text, pattern) input pair.
type Combination struct {
	Name    string
	Text    string
	Pattern string
}

// Runner executes timed trials of the configured algorithms.
type Runner struct {
	trials     int
	algorithms []match.Algorithm
}

// Option configures a Runner.
type Option func(*Runner)

// WithTrials sets the number of repetitions per combination.
func WithTrials(n int) Option {
	return func(r *Runner) {
		r.trials = n
	}
}

// WithAlgorithms restricts the benchmark to the given algorithms.
func WithAlgorithms(algos ...match.Algorithm) Option {
	return func(r *Runner) {
		r.algorithms = algos
	}
}

// New creates a Runner. Defaults: all algorithms, DefaultTrials trials.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		trials:     DefaultTrials,
		algorithms: match.Algorithms(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.trials < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", r.trials)
	}
	if len(r.algorithms) == 0 {
		return nil, fmt.Errorf("at least one algorithm is required")
	}

	return r, nil
}

// Run benchmarks every configured algorithm against every combination and
// returns the ranked report.
//
// The context is checked between (algorithm, combination) pairs only; an
// individual search always runs to completion.
func (r *Runner) Run(ctx context.Context, combos []Combination) (*Report, error) {
	if len(combos) == 0 {
		return nil, fmt.Errorf("at least one combination is required")
	}

	report := &Report{
		Trials:       r.trials,
		Combinations: make([]string, len(combos)),
	}
	for i, c := range combos {
		report.Combinations[i] = c.Name
	}

	for _, algo := range r.algorithms {
		row := Row{
			Algorithm: algo,
			Averages:  make([]time.Duration, len(combos)),
		}

		for i, combo := range combos {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			row.Averages[i] = r.measure(algo, combo)
		}

		row.Overall = overall(row.Averages)
		report.Rows = append(report.Rows, row)
	}

	report.sort()
	return report, nil
}

// measure runs one (algorithm, combination) pair for the configured number
// of trials and returns the average duration of a single search.
func (r *Runner) measure(algo match.Algorithm, combo Combination) time.Duration {
	start := time.Now()
	for t := 0; t < r.trials; t++ {
		algo.Index(combo.Text, combo.Pattern)
	}
	return time.Since(start) / time.Duration(r.trials)
}

// overall averages the per-combination averages.
func overall(averages []time.Duration) time.Duration {
	if len(averages) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range averages {
		total += d
	}
	return total / time.Duration(len(averages))
}
