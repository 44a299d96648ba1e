package bench

import (
	"sort"
	"time"

	"github.com/strfind/strfind/pkg/match"
)

// Row holds the timings of one algorithm across all combinations.
type Row struct {
	Algorithm match.Algorithm `json:"algorithm"`

	// Averages is the average duration of a single search per combination,
	// in the same order as Report.Combinations.
	Averages []time.Duration `json:"averages"`

	// Overall is the mean of Averages and the ranking key.
	Overall time.Duration `json:"overall"`
}

// Report is the outcome of a benchmark run, rows ranked fastest first.
type Report struct {
	Combinations []string `json:"combinations"`
	Trials       int      `json:"trials"`
	Rows         []Row    `json:"rows"`
}

// Fastest returns the top-ranked row. The report always has at least one
// row after a successful Run.
func (r *Report) Fastest() Row {
	return r.Rows[0]
}

// sort ranks rows by overall average, fastest first. Ties keep the
// original algorithm order for stable output.
func (r *Report) sort() {
	sort.SliceStable(r.Rows, func(i, j int) bool {
		return r.Rows[i].Overall < r.Rows[j].Overall
	})
}
