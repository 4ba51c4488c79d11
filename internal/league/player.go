package league

import (
	"fmt"
	"strings"

	"github.com/reallyasi9/nflstats/internal/stats"
)

// Player is a raw player record as delivered by a data source.
type Player struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Position is the raw position code, e.g. QB, HB, or OLB.
	Position string `json:"position" yaml:"position"`

	// Team is the abbreviation of the player's team. It may be empty for free agents.
	Team string `json:"team,omitempty" yaml:"team,omitempty"`

	// Headshot is a link to the player's photo. It may be empty.
	Headshot string `json:"headshot,omitempty" yaml:"headshot,omitempty"`

	Stats stats.Line `json:"stats" yaml:"stats"`
}

// SubjectID is the player ID.
func (p Player) SubjectID() string { return p.ID }

// StatLine returns the player's stats.
func (p Player) StatLine() stats.Line { return p.Stats }

func (p Player) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Position, p.Team)
}

// PlayerFromRecord builds a Player from a flat record.
func PlayerFromRecord(rec map[string]any) (Player, error) {
	p := Player{
		ID:       firstString(rec, "id", "player_id", "gsis_id"),
		Name:     firstString(rec, "name", "player_display_name", "player_name"),
		Position: strings.ToUpper(firstString(rec, "position", "position_group")),
		Team:     strings.ToUpper(firstString(rec, "team", "recent_team", "team_abbr")),
		Headshot: firstString(rec, "headshot", "headshot_url"),
		Stats:    stats.FromRecord(rec),
	}
	if p.ID == "" {
		return p, fmt.Errorf("PlayerFromRecord: record has no player id")
	}
	return p, nil
}

// FilterPlayers returns the players for which keep returns true. The input is not modified.
func FilterPlayers(players []Player, keep func(Player) bool) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// NameContains is a case-insensitive substring predicate on player name, team, and position.
func NameContains(q string) func(Player) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	return func(p Player) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.ToLower(p.Team) == q ||
			strings.ToLower(p.Position) == q
	}
}
