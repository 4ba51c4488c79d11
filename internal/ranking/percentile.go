// Package ranking turns raw stat values into comparable, ranked, and classified values.
//
// Every function here is pure: inputs are read, never modified, and fresh outputs are allocated.
// Degenerate inputs (empty or constant populations, missing values) produce neutral defaults instead of errors.
package ranking

import (
	"math"
	"sort"

	"github.com/reallyasi9/nflstats/internal/stats"
)

// Percentile ranks value within population as an integer in [0, 100].
//
// The population is cleaned of NaN and infinite values and sorted ascending (on a copy).
// The rank is the index of the first element not less than value, as a rounded percentage of the population size.
// A value at or above the population maximum ranks 100.
// A missing value (NaN) or an empty population ranks 0.
func Percentile(value float64, population []float64) int {
	return NewRanker(population).Rank(value)
}

// PercentileOf ranks the value of stat k in line against the same stat across population.
// A null value ranks 0.
func PercentileOf(line stats.Line, k stats.Key, population []stats.Line) int {
	v, ok := line.Get(k)
	if !ok {
		return 0
	}
	col := make([]float64, 0, len(population))
	for _, l := range population {
		if pv, ok := l.Get(k); ok {
			col = append(col, pv)
		}
	}
	return Percentile(v, col)
}

// Ranker ranks many values against one population without re-sorting for each call.
type Ranker struct {
	sorted []float64
}

// NewRanker prepares population for repeated ranking.
func NewRanker(population []float64) Ranker {
	sorted := clean(population)
	sort.Float64s(sorted)
	return Ranker{sorted: sorted}
}

// Len is the number of usable values in the population.
func (r Ranker) Len() int { return len(r.sorted) }

// Rank is Percentile(value, population) for the population the Ranker was built with.
func (r Ranker) Rank(value float64) int {
	n := len(r.sorted)
	if n == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value >= r.sorted[n-1] {
		return 100
	}
	idx := sort.SearchFloat64s(r.sorted, value)
	return clamp(int(math.Round(float64(idx)/float64(n)*100)), 0, 100)
}

func clean(population []float64) []float64 {
	out := make([]float64, 0, len(population))
	for _, v := range population {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}
