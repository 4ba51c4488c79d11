package ranking

import (
	"github.com/reallyasi9/nflstats/internal/stats"
	"gonum.org/v1/gonum/floats"
)

// RadarAverage is the constant value of the league-average series on a radar chart.
const RadarAverage = 50.

// RadarRow is one spoke of a radar chart: a metric and the normalized value of each selected entity.
type RadarRow struct {
	Metric stats.Metric `json:"metric" yaml:"metric"`
	// Values are aligned with the selected entities, in selection order.
	Values  []float64 `json:"values" yaml:"values"`
	Average float64   `json:"average" yaml:"average"`
	Min     float64   `json:"min" yaml:"min"`
	Max     float64   `json:"max" yaml:"max"`
}

// NormalizeForRadar maps each metric onto a 0-100 scale for the selected entities.
//
// The scale spans the minimum and maximum of the metric across population, not just the selection,
// so that two strong entities do not collapse onto the rim. When the population is constant or empty
// for a metric, every selected entity sits at 50. Inverted metrics are flipped (100 - n) so that
// further from the center is always better. A selected entity with no value sits at 0.
func NormalizeForRadar[S stats.Subject](metrics []stats.Metric, selected []S, population []S) []RadarRow {
	rows := make([]RadarRow, len(metrics))
	for i, m := range metrics {
		col := stats.Column(population, m.Key)
		row := RadarRow{Metric: m, Values: make([]float64, len(selected)), Average: RadarAverage}
		degenerate := len(col) == 0
		if !degenerate {
			row.Min = floats.Min(col)
			row.Max = floats.Max(col)
			degenerate = row.Max == row.Min
		}
		for j, s := range selected {
			v, ok := s.StatLine().Get(m.Key)
			switch {
			case !ok:
				row.Values[j] = 0
			case degenerate:
				row.Values[j] = RadarAverage
			default:
				n := clamp((v-row.Min)/(row.Max-row.Min)*100, 0, 100)
				if m.Inverted {
					n = 100 - n
				}
				row.Values[j] = n
			}
		}
		rows[i] = row
	}
	return rows
}
