package importsheet

import (
	"bytes"
	"context"
	"testing"

	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	xl := excelize.NewFile()
	sheet := xl.GetSheetName(xl.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, xl.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	_, err := xl.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadRecords(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"Abbreviation", "Name", "offensive_ppg", "defensive_ppg"},
		{"KC", "Kansas City Chiefs", 22.6, 19.2},
		{"BUF", "Buffalo Bills", 30.9, ""},
		{},
	})
	recs, err := ReadRecords(data, "")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "KC", recs[0]["abbreviation"])
	_, ok := recs[1]["defensive_ppg"]
	assert.False(t, ok)

	_, err = ReadRecords(data, "Nope")
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	recs := []map[string]any{
		{"abbreviation": "KC", "offensive_ppg": "22.6"},
		{"name": "no abbreviation"},
	}
	src, errs := NewSource(2024, "Teams", recs)
	require.NotNil(t, src)
	assert.Len(t, errs, 1)

	teams, err := src.Teams(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, 22.6, teams[0].Stats.Or(stats.OffensivePPG, 0))

	games, errs := NewSource(2024, "games", []map[string]any{{"week": "3", "home": "KC", "away": "ATL", "home_score": "22", "away_score": "17"}})
	require.Empty(t, errs)
	gs, err := games.Games(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, gs, 1)
	assert.Equal(t, "2024_03_ATL_KC", gs[0].ID)

	src, _ = NewSource(2024, "venues", nil)
	assert.Nil(t, src)
}
