package stats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	seven := 7
	tests := []struct {
		name   string
		raw    any
		want   float64
		wantOK bool
	}{
		{name: "float", raw: 12.5, want: 12.5, wantOK: true},
		{name: "int", raw: 3, want: 3, wantOK: true},
		{name: "int pointer", raw: &seven, want: 7, wantOK: true},
		{name: "numeric string", raw: " 25.0 ", want: 25, wantOK: true},
		{name: "json number", raw: json.Number("18"), want: 18, wantOK: true},
		{name: "nil", raw: nil},
		{name: "empty string", raw: ""},
		{name: "word", raw: "N/A"},
		{name: "nan", raw: math.NaN()},
		{name: "inf string", raw: "+Inf"},
		{name: "bool", raw: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseValue(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFromRecord(t *testing.T) {
	rec := map[string]any{
		"player_id":     "00-0033873",
		"passing_yards": "4183",
		"interceptions": 11.0,
		"passing_tds":   nil,
		"not_a_stat":    99.0,
	}
	l := FromRecord(rec)
	assert.Len(t, l, 2)
	assert.Equal(t, 4183.0, l[PassingYards])
	assert.Equal(t, 11.0, l[Interceptions])
	_, ok := l.Get(PassingTDs)
	assert.False(t, ok)
}

func TestLineWithDoesNotMutate(t *testing.T) {
	l := Line{Sacks: 4}
	l2 := l.With(Tackles, 40)
	assert.Len(t, l, 1)
	assert.Len(t, l2, 2)
	assert.Equal(t, 0.0, l.Or(Tackles, 0))
}

type subject struct {
	id   string
	line Line
}

func (s subject) SubjectID() string { return s.id }
func (s subject) StatLine() Line    { return s.line }

func TestColumnSkipsNulls(t *testing.T) {
	pop := []subject{
		{"a", Line{OffensivePPG: 18}},
		{"b", Line{}},
		{"c", Line{OffensivePPG: 30}},
	}
	assert.Equal(t, []float64{18, 30}, Column(pop, OffensivePPG))
}

func TestLookupKey(t *testing.T) {
	k, ok := LookupKey("offensive_ppg")
	assert.True(t, ok)
	assert.Equal(t, OffensivePPG, k)
	_, ok = LookupKey("offensive_PPG")
	assert.False(t, ok)
}
