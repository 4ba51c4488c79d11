package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/ranking"
	"github.com/reallyasi9/nflstats/internal/roster"
	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testTeams() []league.EnrichedTeam {
	teams := []league.Team{
		{Abbreviation: "KC", Name: "Kansas City Chiefs", Stats: stats.Line{stats.OffensivePPG: 30, stats.DefensivePPG: 17, stats.OffensiveYPG: 390, stats.Takeaways: 25}},
		{Abbreviation: "BUF", Name: "Buffalo Bills", Stats: stats.Line{stats.OffensivePPG: 25, stats.DefensivePPG: 20, stats.OffensiveYPG: 370, stats.Takeaways: 30}},
		{Abbreviation: "DAL", Name: "Dallas Cowboys", Stats: stats.Line{stats.OffensivePPG: 22, stats.DefensivePPG: 25, stats.OffensiveYPG: 350, stats.Takeaways: 20}},
		{Abbreviation: "NYG", Name: "New York Giants", Stats: stats.Line{stats.OffensivePPG: 18, stats.DefensivePPG: 22, stats.OffensiveYPG: 300, stats.Takeaways: 15}},
		{Abbreviation: "CAR", Name: "Carolina Panthers", Stats: stats.Line{stats.OffensivePPG: 25, stats.DefensivePPG: 30}},
	}
	return league.Enrich(teams, nil)
}

func testPlayers() []league.Player {
	return []league.Player{
		{ID: "qb1", Name: "Joe Burrow", Position: "QB", Team: "CIN", Stats: stats.Line{stats.PassingYards: 4900, stats.Interceptions: 9, stats.Games: 17, stats.ScrimmageYards: 100, stats.TotalTouchdowns: 2}},
		{ID: "qb2", Name: "Lamar Jackson", Position: "QB", Team: "BAL", Stats: stats.Line{stats.PassingYards: 4100, stats.Interceptions: 4, stats.Games: 17, stats.ScrimmageYards: 900, stats.TotalTouchdowns: 4}},
		{ID: "qb3", Name: "Bryce Young", Position: "QB", Team: "CAR", Stats: stats.Line{stats.PassingYards: 2400, stats.Interceptions: 12}},
		{ID: "rb1", Name: "Saquon Barkley", Position: "RB", Team: "PHI", Stats: stats.Line{stats.RushingYards: 2005, stats.Games: 16, stats.ScrimmageYards: 2283, stats.TotalTouchdowns: 15}},
		{ID: "fb1", Name: "Kyle Juszczyk", Position: "FB", Team: "SF", Stats: stats.Line{stats.RushingYards: 10, stats.ScrimmageYards: 200, stats.TotalTouchdowns: 1}},
		{ID: "ls1", Name: "Long Snapper", Position: "LS", Team: "SF", Stats: stats.Line{stats.Games: 17}},
	}
}

func TestTeamBoardFilterKeepsPercentiles(t *testing.T) {
	teams := testTeams()
	full := NewTeamBoard(2024, teams, nil)
	require.Len(t, full.Rows, 5)
	assert.Equal(t, "KC", full.Rows[0].Abbreviation)

	nfc := NewTeamBoard(2024, teams, league.InConference(league.NFC))
	require.Len(t, nfc.Rows, 3)
	byAbbr := map[string]TeamRow{}
	for _, r := range full.Rows {
		byAbbr[r.Abbreviation] = r
	}
	for _, r := range nfc.Rows {
		assert.Equal(t, byAbbr[r.Abbreviation].Cells, r.Cells, r.Abbreviation)
		assert.Equal(t, byAbbr[r.Abbreviation].Overall, r.Overall, r.Abbreviation)
	}
}

func TestTeamBoardCells(t *testing.T) {
	b := NewTeamBoard(2024, testTeams(), nil)
	var kc TeamRow
	for _, r := range b.Rows {
		if r.Abbreviation == "KC" {
			kc = r
		}
	}
	for _, c := range kc.Cells {
		switch c.Metric.Key {
		case stats.OffensivePPG:
			require.NotNil(t, c.Value)
			assert.Equal(t, 100, c.Percentile)
			assert.Equal(t, ranking.Elite, c.Grade.Tier)
		case stats.DefensivePPG:
			assert.Equal(t, 0, c.Percentile, "lowest points allowed")
			assert.Equal(t, ranking.Elite, c.Grade.Tier, "inverted metric")
		case stats.PassYPG:
			assert.Nil(t, c.Value)
			assert.Nil(t, c.Grade)
		}
	}
}

func TestPlayerBoard(t *testing.T) {
	players := testPlayers()

	qbs := NewPlayerBoard(2024, players, roster.QB, "")
	require.Len(t, qbs.Rows, 3)
	assert.Equal(t, "Joe Burrow", qbs.Rows[0].Name, "sorted by passing yards")
	assert.Equal(t, roster.QB.All(), qbs.Metrics)

	search := NewPlayerBoard(2024, players, roster.QB, "lamar")
	require.Len(t, search.Rows, 1)
	assert.Equal(t, qbs.Rows[1].Cells, search.Rows[0].Cells, "search does not change percentiles")

	all := NewPlayerBoard(2024, players, "", "")
	require.Len(t, all.Rows, 6)
	assert.Equal(t, "ls1", all.Rows[5].ID)
	assert.False(t, all.Rows[5].Graded)
	require.Len(t, all.Rows[5].Cells, len(roster.Generic), "ungrouped rows keep their cells")
	games := all.Rows[5].Cells[0]
	require.NotNil(t, games.Value)
	assert.Equal(t, 17., *games.Value)
	assert.NotNil(t, games.Grade, "ranked against every player")
	assert.Equal(t, roster.Generic, all.Metrics)

	backs := NewPlayerBoard(2024, players, roster.RB, "")
	assert.Len(t, backs.Rows, 2, "FB is a running back")
}

func TestBadge(t *testing.T) {
	for _, tier := range []ranking.Tier{ranking.Elite, ranking.VeryGood, ranking.Average, ranking.Poor, ranking.Terrible} {
		g := ranking.Grade{Tier: tier, Color: tier.Color()}
		assert.Contains(t, Badge(&g), tier.Letter(), tier)
	}
	assert.Contains(t, Badge(&ranking.Grade{Tier: ranking.Poor, Color: ranking.Color(99)}), ranking.Poor.Letter())
	assert.Contains(t, Badge(nil), "-")
}

func TestParseGroupFilter(t *testing.T) {
	g, err := ParseGroupFilter("hb")
	require.NoError(t, err)
	assert.Equal(t, roster.RB, g)

	g, err = ParseGroupFilter("all")
	require.NoError(t, err)
	assert.Empty(t, g)

	_, err = ParseGroupFilter("LS")
	var ue UnknownEntityError
	assert.True(t, errors.As(err, &ue))
}

func TestCompareTeams(t *testing.T) {
	c, err := CompareTeams(2024, testTeams(), []string{"kc", "BUF"})
	require.NoError(t, err)
	require.Len(t, c.Subjects, 2)
	require.Len(t, c.HeadToHead, len(league.TeamMetrics()))
	require.NotNil(t, c.Tally)
	assert.Equal(t, len(league.TeamMetrics()), c.Tally.A+c.Tally.B+c.Tally.Even)
	require.Len(t, c.Radar, len(league.TeamRadarMetrics))
	assert.Equal(t, 100., c.Radar[0].Values[0])
	require.Len(t, c.Quadrants, 3)
	require.Len(t, c.Quadrants[0].Points, 2)
	assert.Equal(t, "Elite", c.Quadrants[0].Points[0].Label)

	three, err := CompareTeams(2024, testTeams(), []string{"KC", "BUF", "DAL"})
	require.NoError(t, err)
	assert.Nil(t, three.HeadToHead)
	assert.Nil(t, three.Tally)

	_, err = CompareTeams(2024, testTeams(), []string{"KC", "XXX"})
	var ue UnknownEntityError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "XXX", ue.ID)
}

func TestComparePlayers(t *testing.T) {
	c, err := ComparePlayers(2024, testPlayers(), []string{"qb1", "qb2"})
	require.NoError(t, err)
	require.Len(t, c.Radar, len(roster.QB.Primary()))
	for _, d := range c.HeadToHead {
		if d.Metric.Key == stats.Interceptions {
			assert.Equal(t, ranking.SideB, d.Leader, "fewer interceptions wins")
		}
	}
	assert.Equal(t, ranking.Offensive, c.Quadrants[0].Family)

	mixed, err := ComparePlayers(2024, testPlayers(), []string{"qb1", "rb1"})
	require.NoError(t, err)
	require.Len(t, mixed.Radar, len(roster.Generic))
	assert.Equal(t, stats.ScrimmageYards, mixed.Quadrants[0].X.Key)

	_, err = ComparePlayers(2024, testPlayers(), []string{"nobody"})
	assert.Error(t, err)
}

func TestWriteFormats(t *testing.T) {
	b := NewTeamBoard(2024, testTeams(), nil)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, b))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 2024, decoded["season"])

	buf.Reset()
	require.NoError(t, Write(&buf, FormatYAML, b))
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &y))
	assert.Equal(t, 2024, y["season"])

	buf.Reset()
	require.NoError(t, Write(&buf, FormatTable, b))
	assert.Contains(t, buf.String(), "KC")
	assert.Contains(t, buf.String(), "PTS/G", "headers are upper-cased")

	c, err := CompareTeams(2024, testTeams(), []string{"KC", "BUF"})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, Write(&buf, FormatTable, c))
	assert.Contains(t, strings.ToLower(buf.String()), "overall profile")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)
	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "17", FormatValue(17))
	assert.Equal(t, "22.6", FormatValue(22.56))
	assert.Equal(t, "-3", FormatValue(-3))
}

func TestWorkbook(t *testing.T) {
	xl, err := Workbook(NewTeamBoard(2024, testTeams(), nil), NewPlayerBoard(2024, testPlayers(), "", ""))
	require.NoError(t, err)

	rows, err := xl.GetRows(TeamsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Team", rows[0][0])
	assert.Equal(t, "KC", rows[1][0])

	rows, err = xl.GetRows(PlayersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 7)
}
