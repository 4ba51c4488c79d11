package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/stats"
)

// PLAYERS_COLLECTION is the path to the players collection of a season.
const PLAYERS_COLLECTION = "players"

// Player is a player document. The document ID is the player ID.
type Player struct {
	ID       string             `firestore:"id"`
	Name     string             `firestore:"name"`
	Position string             `firestore:"position"`
	Team     string             `firestore:"team,omitempty"`
	Headshot string             `firestore:"headshot,omitempty"`
	Stats    map[string]float64 `firestore:"stats"`
}

func (p Player) String() string {
	var sb strings.Builder
	sb.WriteString("Player\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("ID", 0, false, p.ID))
	ss = append(ss, treeString("Name", 0, false, p.Name))
	ss = append(ss, treeString("Position", 0, false, p.Position))
	ss = append(ss, treeString("Team", 0, false, p.Team))
	ss = append(ss, treeString("Headshot", 0, false, p.Headshot))
	ss = append(ss, treeStats("Stats", 0, true, p.Stats))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// NewPlayer converts a league player to its document.
func NewPlayer(p league.Player) Player {
	return Player{ID: p.ID, Name: p.Name, Position: p.Position, Team: p.Team, Headshot: p.Headshot, Stats: p.Stats.Floats()}
}

// League converts the document back to a league player.
func (p Player) League() league.Player {
	return league.Player{ID: p.ID, Name: p.Name, Position: p.Position, Team: p.Team, Headshot: p.Headshot, Stats: stats.FromFloats(p.Stats)}
}

// GetPlayers returns a collection of players for a given season.
func GetPlayers(ctx context.Context, season *firestore.DocumentRef) ([]Player, []*firestore.DocumentRef, error) {
	return getCollection[Player](ctx, season.Collection(PLAYERS_COLLECTION))
}
