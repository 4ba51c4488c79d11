package ranking

import (
	"testing"

	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		p      int
		want   Tier
		letter string
	}{
		{100, Elite, "A+"},
		{90, Elite, "A+"},
		{89, Great, "A"},
		{80, Great, "A"},
		{79, VeryGood, "B+"},
		{60, AboveAverage, "B"},
		{59, Solid, "C+"},
		{40, Average, "C"},
		{39, BelowAverage, "D+"},
		{20, Poor, "D"},
		{10, VeryPoor, "F+"},
		{9, Terrible, "F"},
		{0, Terrible, "F"},
		{-4, Terrible, "F"},
		{140, Elite, "A+"},
	}
	for _, tt := range tests {
		got := TierFor(tt.p)
		assert.Equal(t, tt.want, got, "percentile %d", tt.p)
		assert.Equal(t, tt.letter, got.Letter(), "percentile %d", tt.p)
	}
}

func TestGradeInversionSymmetry(t *testing.T) {
	for p := 0; p <= 100; p++ {
		assert.Equal(t, GradeFor(p, false), GradeFor(100-p, true), "percentile %d", p)
	}
}

func TestGradeColor(t *testing.T) {
	assert.Equal(t, Emerald, GradeFor(95, false).Color)
	assert.Equal(t, Red, GradeFor(95, true).Color)
	assert.Equal(t, "#EAB308", GradeFor(45, false).Color.Hex())
}

func TestCompositeGrade(t *testing.T) {
	metrics := []stats.Metric{
		stats.M(stats.PassingYards, "Yds"),
		stats.Inv(stats.Interceptions, "INT"),
		stats.M(stats.PassingTDs, "TD"),
	}
	pop := []stats.Line{
		{stats.PassingYards: 4000, stats.Interceptions: 5},
		{stats.PassingYards: 3000, stats.Interceptions: 10},
		{stats.PassingYards: 2000, stats.Interceptions: 15},
		{stats.PassingYards: 1000, stats.Interceptions: 20},
	}

	best := CompositeGrade(pop[0], metrics, pop)
	assert.Equal(t, 2, best.Scored)
	// yards rank 100, interceptions rank 0 -> effective 100
	assert.Equal(t, 100, best.Score)
	assert.Equal(t, Elite, best.Tier)

	worst := CompositeGrade(pop[3], metrics, pop)
	// yards rank 0, interceptions rank 100 -> effective 0
	assert.Equal(t, 0, worst.Score)
	assert.Equal(t, Terrible, worst.Tier)

	empty := CompositeGrade(stats.Line{}, metrics, pop)
	assert.Equal(t, 0, empty.Scored)
	assert.Equal(t, Average, empty.Tier)
	assert.Equal(t, "C", empty.Letter())
}
