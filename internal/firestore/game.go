package firestore

import (
	"context"
	"strings"

	fs "cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
)

// GAMES_COLLECTION is the path to the games collection of a season.
const GAMES_COLLECTION = "games"

// Game is a game document. The document ID is the game ID.
type Game struct {
	Season int    `firestore:"season"`
	Week   int    `firestore:"week"`
	Home   string `firestore:"home"`
	Away   string `firestore:"away"`

	// HomePoints is the number of points earned by the home team at end of game. It is nil until the game is played.
	HomePoints *int `firestore:"home_points"`

	// AwayPoints is the number of points earned by the away team at end of game. It is nil until the game is played.
	AwayPoints *int `firestore:"away_points"`
}

func (g Game) String() string {
	var sb strings.Builder
	sb.WriteString("Game\n")
	sb.WriteString(treeInt("Season", 0, false, g.Season))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Week", 0, false, g.Week))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Home", 0, false, g.Home))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Away", 0, false, g.Away))
	sb.WriteRune('\n')
	sb.WriteString(treeIntPtr("HomePoints", 0, false, g.HomePoints))
	sb.WriteRune('\n')
	sb.WriteString(treeIntPtr("AwayPoints", 0, true, g.AwayPoints))
	return sb.String()
}

// NewGame converts a league game to its document.
func NewGame(g league.Game) Game {
	return Game{Season: g.Season, Week: g.Week, Home: g.Home, Away: g.Away, HomePoints: g.HomeScore, AwayPoints: g.AwayScore}
}

// League converts the document back to a league game with the given ID.
func (g Game) League(id string) league.Game {
	return league.Game{ID: id, Season: g.Season, Week: g.Week, Home: g.Home, Away: g.Away, HomeScore: g.HomePoints, AwayScore: g.AwayPoints}
}

// GetGames returns a collection of games for a given season.
func GetGames(ctx context.Context, season *fs.DocumentRef) ([]Game, []*fs.DocumentRef, error) {
	return getCollection[Game](ctx, season.Collection(GAMES_COLLECTION))
}
