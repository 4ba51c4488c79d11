package syncseason

import (
	"context"
	"errors"
	"testing"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() league.Memory {
	return league.Memory{2024: {
		Year:    2024,
		Teams:   []league.Team{{Abbreviation: "KC"}, {Abbreviation: "BUF"}},
		Players: []league.Player{{ID: "1", Name: "Someone", Position: "QB"}},
		Games:   []league.Game{{ID: "2024_01_BUF_KC", Season: 2024, Week: 1, Home: "KC", Away: "BUF"}},
	}}
}

func TestFetch(t *testing.T) {
	ctx := NewContext(context.Background())
	ctx.Source = testSource()
	ctx.Season = 2024

	s, err := fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Teams, 2)
	assert.Len(t, s.Players, 1)
	assert.Len(t, s.Games, 1)

	ctx.Collections = []string{"players"}
	s, err = fetch(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.Teams)
	assert.Len(t, s.Players, 1)
}

func TestFetchMissingSeason(t *testing.T) {
	ctx := NewContext(context.Background())
	ctx.Source = testSource()
	ctx.Season = 1999

	_, err := fetch(ctx)
	var nse league.NoSeasonError
	assert.True(t, errors.As(err, &nse))
}

func TestDryRunWithoutClient(t *testing.T) {
	ctx := NewContext(context.Background())
	ctx.Source = testSource()
	ctx.Season = 2024
	ctx.DryRun = true
	assert.NoError(t, SyncSeason(ctx))

	ctx.DryRun = false
	assert.Error(t, SyncSeason(ctx))
}
