package firestore

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamDocument(t *testing.T) {
	lt := league.Team{Abbreviation: "KC", Name: "Kansas City Chiefs", Stats: stats.Line{stats.OffensivePPG: 22.6}}
	doc := NewTeam(lt)
	assert.Equal(t, map[string]float64{"offensive_ppg": 22.6}, doc.Stats)

	doc.Stats["retired_stat"] = 1
	back := doc.League()
	assert.Equal(t, lt.Stats, back.Stats, "unknown stat names are dropped")
	assert.Contains(t, doc.String(), "offensive_ppg: 22.6")
}

func TestGameDocument(t *testing.T) {
	h, a := 27, 20
	g := league.Game{ID: "2024_01_BAL_KC", Season: 2024, Week: 1, Home: "KC", Away: "BAL", HomeScore: &h, AwayScore: &a}
	back := NewGame(g).League(g.ID)
	assert.Equal(t, g, back)
}

func TestFingerprint(t *testing.T) {
	teams := []league.Team{
		{Abbreviation: "KC", Stats: stats.Line{stats.OffensivePPG: 22.6, stats.DefensivePPG: 19.2}},
		{Abbreviation: "BUF", Stats: stats.Line{stats.OffensivePPG: 30.9}},
	}
	a := Fingerprint(NewTeamCollection(nil, teams))
	b := Fingerprint(NewTeamCollection(nil, teams))
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)

	changed := []league.Team{teams[0], {Abbreviation: "BUF", Stats: stats.Line{stats.OffensivePPG: 31}}}
	assert.NotEqual(t, a, Fingerprint(NewTeamCollection(nil, changed)))
	assert.NotEqual(t, a, Fingerprint(NewPlayerCollection(nil, nil)))
}

func TestDryRun(t *testing.T) {
	players := []league.Player{{ID: "00-1", Name: "Josh Allen", Position: "QB", Team: "BUF"}}
	c := NewPlayerCollection(nil, players)
	require.Equal(t, 1, c.Len())

	var buf bytes.Buffer
	n, err := DryRun(&buf, c)
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), n)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "(nil ref)\n"))
	assert.Contains(t, out, "Josh Allen")
}
