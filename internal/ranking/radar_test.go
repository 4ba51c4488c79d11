package ranking

import (
	"testing"

	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeForRadar(t *testing.T) {
	metrics := []stats.Metric{
		stats.M(stats.OffensivePPG, "PPG"),
		stats.Inv(stats.DefensivePPG, "PA"),
		stats.M(stats.Games, "G"),
	}
	pop := []entity{
		{id: "KC", line: stats.Line{stats.OffensivePPG: 30, stats.DefensivePPG: 17, stats.Games: 17}},
		{id: "BAL", line: stats.Line{stats.OffensivePPG: 28, stats.DefensivePPG: 19, stats.Games: 17}},
		{id: "NYG", line: stats.Line{stats.OffensivePPG: 15, stats.DefensivePPG: 27, stats.Games: 17}},
		{id: "CAR", line: stats.Line{stats.OffensivePPG: 10, stats.DefensivePPG: 22, stats.Games: 17}},
	}
	selected := []entity{pop[0], pop[1]}

	rows := NormalizeForRadar(metrics, selected, pop)
	require.Len(t, rows, 3)

	assert.InDeltaSlice(t, []float64{100, 90}, rows[0].Values, 1e-9)
	// points allowed: min 17 max 27; KC 17 -> 0 -> inverted 100
	assert.InDeltaSlice(t, []float64{100, 80}, rows[1].Values, 1e-9)
	// constant population
	assert.Equal(t, []float64{50, 50}, rows[2].Values)
	for _, r := range rows {
		assert.Equal(t, RadarAverage, r.Average)
	}
}

func TestNormalizeForRadarDegenerate(t *testing.T) {
	m := []stats.Metric{stats.M(stats.Sacks, "Sacks")}
	sel := []entity{{id: "a", line: stats.Line{stats.Sacks: 3}}, {id: "b", line: stats.Line{}}}

	rows := NormalizeForRadar(m, sel, nil)
	assert.Equal(t, []float64{50, 0}, rows[0].Values)

	// selected entity outside the population range is clamped
	pop := []entity{{id: "c", line: stats.Line{stats.Sacks: 1}}, {id: "d", line: stats.Line{stats.Sacks: 2}}}
	rows = NormalizeForRadar(m, sel[:1], pop)
	assert.Equal(t, []float64{100}, rows[0].Values)
}
