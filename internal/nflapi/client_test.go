package nflapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/reallyasi9/nflstats/internal/cache"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ league.Source = (*Client)(nil)

func newServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/seasons/2024/teams", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"team_abbr": "KC", "team_name": "Kansas City Chiefs", "offensive_ppg": 22.6, "third_down_pct": "48.1", "red_zone_pct": null},
			{"team_name": "missing abbreviation"}
		]`))
	})
	mux.HandleFunc("/seasons/2024/players", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"player_id": "00-0033873", "player_display_name": "Patrick Mahomes", "position": "QB", "recent_team": "KC", "passing_yards": 3928, "interceptions": "11"}]`))
	})
	mux.HandleFunc("/seasons/2024/games", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"game_id": "2024_01_BAL_KC", "home_score": 27, "away_score": 20}, {"game_id": "bad"}]`))
	})
	mux.HandleFunc("/seasons/1900/teams", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such season", http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	c := New(srv.URL+"/", WithKey("secret"))
	ctx := context.Background()

	teams, err := c.Teams(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "KC", teams[0].Abbreviation)
	assert.Equal(t, 22.6, teams[0].Stats.Or(stats.OffensivePPG, 0))
	assert.Equal(t, 48.1, teams[0].Stats.Or(stats.ThirdDownPct, 0))
	_, ok := teams[0].Stats.Get(stats.RedZonePct)
	assert.False(t, ok, "null values are absent")

	players, err := c.Players(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 11., players[0].Stats.Or(stats.Interceptions, 0))

	games, err := c.Games(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.True(t, games[0].Played())
	assert.Equal(t, 2024, games[0].Season)
}

func TestClientStatusError(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	_, err := New(srv.URL).Teams(context.Background(), 1900)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Contains(t, err.Error(), "/seasons/1900/teams")
	assert.Contains(t, err.Error(), "no such season")
}

func TestClientCache(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	c := New(srv.URL, WithKey("secret"), WithCache(cache.NewMemory()))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		teams, err := c.Teams(ctx, 2024)
		require.NoError(t, err)
		assert.Len(t, teams, 1)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClientDoesNotCacheUndecodableBodies(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Write([]byte(`<html>maintenance</html>`))
			return
		}
		w.Write([]byte(`[{"team_abbr": "KC", "team_name": "Kansas City Chiefs"}]`))
	}))
	t.Cleanup(srv.Close)
	mem := cache.NewMemory()
	c := New(srv.URL, WithCache(mem))
	ctx := context.Background()

	_, err := c.Teams(ctx, 2024)
	require.Error(t, err)
	_, ok, err := mem.Get(ctx, cache.Key(2024, TeamsCollection))
	require.NoError(t, err)
	assert.False(t, ok, "a body that does not decode is not cached")

	teams, err := c.Teams(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))

	_, err = c.Teams(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "the decoded body is cached")
}

func TestClientRefetchesCorruptCacheEntry(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	mem := cache.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, cache.Key(2024, TeamsCollection), []byte("not json"), time.Hour))

	teams, err := New(srv.URL, WithKey("secret"), WithCache(mem)).Teams(ctx, 2024)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
