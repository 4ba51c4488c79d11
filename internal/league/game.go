package league

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reallyasi9/nflstats/internal/stats"
)

// Game is a scheduled or completed game.
type Game struct {
	// ID encodes the season, week, and matchup as <season>_<week>_<away>_<home>, e.g. 2024_01_BAL_KC.
	ID     string `json:"id" yaml:"id"`
	Season int    `json:"season" yaml:"season"`
	Week   int    `json:"week" yaml:"week"`
	Home   string `json:"home" yaml:"home"`
	Away   string `json:"away" yaml:"away"`

	// HomeScore and AwayScore are nil until the game has been played.
	HomeScore *int `json:"home_score" yaml:"home_score"`
	AwayScore *int `json:"away_score" yaml:"away_score"`
}

// Played reports whether both scores are known.
func (g Game) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

func (g Game) String() string {
	if !g.Played() {
		return fmt.Sprintf("%s @ %s (week %d)", g.Away, g.Home, g.Week)
	}
	return fmt.Sprintf("%s %d @ %s %d (week %d)", g.Away, *g.AwayScore, g.Home, *g.HomeScore, g.Week)
}

// GameIDError is returned when a game ID cannot be parsed.
type GameIDError string

func (e GameIDError) Error() string {
	return fmt.Sprintf("malformed game id '%s': expected <season>_<week>_<away>_<home>", string(e))
}

// MakeGameID formats a game ID.
func MakeGameID(season, week int, away, home string) string {
	return fmt.Sprintf("%d_%02d_%s_%s", season, week, strings.ToUpper(away), strings.ToUpper(home))
}

// ParseGameID splits a game ID into its season, week, away team, and home team.
func ParseGameID(id string) (season, week int, away, home string, err error) {
	parts := strings.Split(id, "_")
	if len(parts) != 4 || parts[2] == "" || parts[3] == "" {
		err = GameIDError(id)
		return
	}
	if season, err = strconv.Atoi(parts[0]); err != nil {
		err = GameIDError(id)
		return
	}
	if week, err = strconv.Atoi(parts[1]); err != nil || week < 0 {
		err = GameIDError(id)
		return
	}
	away = parts[2]
	home = parts[3]
	return
}

// GameFromRecord builds a Game from a flat record.
// Fields the ID can supply (season, week, teams) are filled from it when missing from the record.
func GameFromRecord(rec map[string]any) (Game, error) {
	g := Game{
		ID:   firstString(rec, "id", "game_id"),
		Home: strings.ToUpper(firstString(rec, "home", "home_team")),
		Away: strings.ToUpper(firstString(rec, "away", "away_team")),
	}
	if v, ok := intField(rec, "season"); ok {
		g.Season = v
	}
	if v, ok := intField(rec, "week"); ok {
		g.Week = v
	}
	if v, ok := intField(rec, "home_score"); ok {
		g.HomeScore = &v
	}
	if v, ok := intField(rec, "away_score"); ok {
		g.AwayScore = &v
	}

	if g.ID != "" {
		season, week, away, home, err := ParseGameID(g.ID)
		if err != nil && (g.Home == "" || g.Away == "") {
			return g, fmt.Errorf("GameFromRecord: %w", err)
		}
		if err == nil {
			if g.Season == 0 {
				g.Season = season
			}
			if g.Week == 0 {
				g.Week = week
			}
			if g.Home == "" {
				g.Home = home
			}
			if g.Away == "" {
				g.Away = away
			}
		}
	}
	if g.Home == "" || g.Away == "" {
		return g, fmt.Errorf("GameFromRecord: record has no home or away team")
	}
	if g.ID == "" {
		g.ID = MakeGameID(g.Season, g.Week, g.Away, g.Home)
	}
	return g, nil
}

func intField(rec map[string]any, name string) (int, bool) {
	raw, ok := rec[name]
	if !ok {
		return 0, false
	}
	switch x := raw.(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case int64:
		return int(x), true
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(x))
		return v, err == nil
	}
	if f, ok := stats.ParseValue(raw); ok {
		return int(f), true
	}
	return 0, false
}
