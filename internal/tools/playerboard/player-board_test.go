package playerboard

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerBoard(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background())
	ctx.Source = league.Memory{2024: {Players: []league.Player{
		{ID: "1", Name: "A", Position: "K", Stats: stats.Line{stats.FieldGoalsMade: 30}},
		{ID: "2", Name: "B", Position: "PK", Stats: stats.Line{stats.FieldGoalsMade: 35}},
		{ID: "3", Name: "C", Position: "P"},
	}}}
	ctx.Season = 2024
	ctx.Format = report.FormatJSON
	ctx.Out = &buf
	ctx.Group = "k"
	ctx.Limit = 1

	require.NoError(t, PlayerBoard(ctx))
	var b struct {
		Rows []struct {
			Name  string `json:"name"`
			Cells []struct {
				Percentile int `json:"percentile"`
			} `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &b))
	require.Len(t, b.Rows, 1)
	assert.Equal(t, "B", b.Rows[0].Name)
	assert.Equal(t, 100, b.Rows[0].Cells[0].Percentile)

	ctx.Group = "OL"
	assert.Error(t, PlayerBoard(ctx))
}
