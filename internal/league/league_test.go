package league

import (
	"context"
	"errors"
	"testing"

	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(n int) *int { return &n }

func testGames() []Game {
	return []Game{
		{ID: "2024_01_BAL_KC", Season: 2024, Week: 1, Away: "BAL", Home: "KC", AwayScore: score(20), HomeScore: score(27)},
		{ID: "2024_02_KC_CIN", Season: 2024, Week: 2, Away: "KC", Home: "CIN", AwayScore: score(26), HomeScore: score(25)},
		{ID: "2024_03_CIN_BAL", Season: 2024, Week: 3, Away: "CIN", Home: "BAL", AwayScore: score(17), HomeScore: score(17)},
		{ID: "2024_04_BAL_CIN", Season: 2024, Week: 4, Away: "BAL", Home: "CIN"},
	}
}

func TestRecords(t *testing.T) {
	recs := Records(testGames(), 0)

	assert.Equal(t, Record{Wins: 2, PointsFor: 53, PointsAgainst: 45}, recs["KC"])
	assert.Equal(t, Record{Losses: 1, Ties: 1, PointsFor: 37, PointsAgainst: 44}, recs["BAL"])
	assert.Equal(t, "0-1-1", recs["BAL"].String())
	assert.InDelta(t, 0.25, recs["BAL"].WinPct(), 1e-9)
	assert.Equal(t, -7, recs["BAL"].PointDiff())

	old := Records([]Game{{Home: "sf", Away: "LA", HomeScore: score(27), AwayScore: score(20)}}, 0)
	assert.Equal(t, 1, old["LAR"].Losses, "aliases are keyed by the current abbreviation")
	assert.Equal(t, 1, old["SF"].Wins)
	_, ok := old["LA"]
	assert.False(t, ok)

	through := Records(testGames(), 1)
	assert.Equal(t, 1, through["KC"].Wins)
	assert.Zero(t, through["CIN"].Played())
}

func TestWinPctNoGames(t *testing.T) {
	assert.Zero(t, Record{}.WinPct())
}

func TestGameID(t *testing.T) {
	id := MakeGameID(2024, 1, "bal", "kc")
	assert.Equal(t, "2024_01_BAL_KC", id)

	season, week, away, home, err := ParseGameID(id)
	require.NoError(t, err)
	assert.Equal(t, 2024, season)
	assert.Equal(t, 1, week)
	assert.Equal(t, "BAL", away)
	assert.Equal(t, "KC", home)

	for _, bad := range []string{"", "2024_01_BAL", "x_01_BAL_KC", "2024_y_BAL_KC", "2024_01__KC"} {
		_, _, _, _, err := ParseGameID(bad)
		var gerr GameIDError
		assert.True(t, errors.As(err, &gerr), bad)
	}
}

func TestGameFromRecord(t *testing.T) {
	g, err := GameFromRecord(map[string]any{"game_id": "2023_17_PIT_SEA", "home_score": 20.0, "away_score": "30"})
	require.NoError(t, err)
	assert.Equal(t, 2023, g.Season)
	assert.Equal(t, 17, g.Week)
	assert.Equal(t, "SEA", g.Home)
	assert.True(t, g.Played())
	assert.Equal(t, 30, *g.AwayScore)

	g, err = GameFromRecord(map[string]any{"season": 2023, "week": 2, "home": "nyj", "away": "dal"})
	require.NoError(t, err)
	assert.Equal(t, "2023_02_DAL_NYJ", g.ID)
	assert.False(t, g.Played())

	_, err = GameFromRecord(map[string]any{"id": "nope"})
	assert.Error(t, err)
}

func TestEnrich(t *testing.T) {
	teams := []Team{
		{Abbreviation: "KC", Name: "Kansas City Chiefs", Stats: stats.Line{stats.OffensivePPG: 26.5}},
		{Abbreviation: "OAK", Stats: stats.Line{stats.PointDiff: 3}},
		{Abbreviation: "XXX"},
	}
	enriched := Enrich(teams, testGames())
	require.Len(t, enriched, 3)

	kc := enriched[0]
	assert.Equal(t, AFCWest, kc.Division)
	assert.Equal(t, AFC, kc.Conference)
	assert.Equal(t, 2, kc.Record.Wins)
	assert.InDelta(t, 1.0, kc.WinPct, 1e-9)
	assert.Equal(t, 8., kc.Stats.Or(stats.PointDiff, 0))

	assert.Equal(t, AFCWest, enriched[1].Division, "aliases resolve to the current team")
	assert.Equal(t, 3., enriched[1].Stats.Or(stats.PointDiff, 0), "supplied values are kept")

	assert.Empty(t, enriched[2].Division)
	_, ok := enriched[2].Stats.Get(stats.PointDiff)
	assert.False(t, ok, "no games, no derived differential")

	_, ok = teams[0].Stats.Get(stats.PointDiff)
	assert.False(t, ok, "input teams are not modified")
	assert.Len(t, teams[0].Stats, 1)

	afc := FilterTeams(enriched, InConference(AFC))
	assert.Len(t, afc, 2)
	assert.Len(t, FilterTeams(enriched, InDivision("")), 3)
}

func TestEnrichAliasedGames(t *testing.T) {
	teams := []Team{{Abbreviation: "LAR"}, {Abbreviation: "SF"}, {Abbreviation: "WAS"}}
	games := []Game{
		{Season: 2024, Week: 1, Home: "SF", Away: "LA", HomeScore: score(27), AwayScore: score(20)},
		{Season: 2024, Week: 2, Home: "WSH", Away: "STL", HomeScore: score(10), AwayScore: score(24)},
	}
	enriched := Enrich(teams, games)
	require.Len(t, enriched, 3)

	lar := enriched[0]
	assert.Equal(t, Record{Wins: 1, Losses: 1, PointsFor: 44, PointsAgainst: 37}, lar.Record)
	assert.InDelta(t, 0.5, lar.WinPct, 1e-9)
	assert.Equal(t, 7., lar.Stats.Or(stats.PointDiff, 0))
	assert.Equal(t, "1-0", enriched[1].Record.String())
	assert.Equal(t, "0-1", enriched[2].Record.String())
}

func TestDivisions(t *testing.T) {
	seen := map[Division]int{}
	for _, d := range divisions {
		seen[d]++
	}
	assert.Len(t, seen, 8)
	for d, n := range seen {
		assert.Equal(t, 4, n, d)
	}
	assert.Equal(t, NFC, NFCNorth.Conference())
	assert.Equal(t, "LAR", CanonicalAbbreviation("STL"))
}

func TestRecordParsing(t *testing.T) {
	tm, err := TeamFromRecord(map[string]any{"team_abbr": "buf", "team_name": "Buffalo Bills", "offensive_ppg": "28.4", "notes": "x"})
	require.NoError(t, err)
	assert.Equal(t, "BUF", tm.Abbreviation)
	assert.Equal(t, 28.4, tm.Stats.Or(stats.OffensivePPG, 0))
	assert.Len(t, tm.Stats, 1)

	_, err = TeamFromRecord(map[string]any{"name": "nobody"})
	assert.Error(t, err)

	p, err := PlayerFromRecord(map[string]any{"player_id": "00-1", "player_display_name": "Josh Allen", "position": "qb", "recent_team": "BUF", "passing_yards": 4306})
	require.NoError(t, err)
	assert.Equal(t, "QB", p.Position)
	assert.Equal(t, 4306., p.Stats.Or(stats.PassingYards, 0))

	players := []Player{p, {ID: "2", Name: "Stefon Diggs", Team: "HOU"}}
	assert.Len(t, FilterPlayers(players, NameContains("allen")), 1)
	assert.Len(t, FilterPlayers(players, NameContains("hou")), 1)
	assert.Len(t, FilterPlayers(players, NameContains("")), 2)
}

func TestMemorySource(t *testing.T) {
	src := Memory{2024: {Year: 2024, Teams: []Team{{Abbreviation: "KC"}}, Games: testGames()}}
	s, err := Load(context.Background(), src, 2024)
	require.NoError(t, err)
	assert.Len(t, s.Teams, 1)
	assert.Len(t, s.EnrichedTeams(), 1)

	_, err = Load(context.Background(), src, 1999)
	var nse NoSeasonError
	require.ErrorAs(t, err, &nse)
	assert.Equal(t, NoSeasonError(1999), nse)
}
