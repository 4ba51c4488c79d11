package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/stats"
)

// TEAMS_COLLECTION is the path to the teams collection of a season.
const TEAMS_COLLECTION = "teams"

// Team is a team document. The document ID is the abbreviation.
type Team struct {
	// Abbreviation is the team's short capitalized code, e.g. KC or NYJ.
	Abbreviation string `firestore:"abbreviation"`

	// Name is the display name of the team.
	Name string `firestore:"name"`

	// Logo is a link to the team logo.
	Logo string `firestore:"logo,omitempty"`

	// Stats are keyed by stat name. Missing stats are absent, never zero.
	Stats map[string]float64 `firestore:"stats"`
}

func (t Team) String() string {
	var sb strings.Builder
	sb.WriteString("Team\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("Abbreviation", 0, false, t.Abbreviation))
	ss = append(ss, treeString("Name", 0, false, t.Name))
	ss = append(ss, treeString("Logo", 0, false, t.Logo))
	ss = append(ss, treeStats("Stats", 0, true, t.Stats))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// NewTeam converts a league team to its document.
func NewTeam(t league.Team) Team {
	return Team{Abbreviation: t.Abbreviation, Name: t.Name, Logo: t.Logo, Stats: t.Stats.Floats()}
}

// League converts the document back to a league team. Unknown stat names are dropped.
func (t Team) League() league.Team {
	return league.Team{Abbreviation: t.Abbreviation, Name: t.Name, Logo: t.Logo, Stats: stats.FromFloats(t.Stats)}
}

// GetTeams returns a collection of teams for a given season.
func GetTeams(ctx context.Context, season *firestore.DocumentRef) ([]Team, []*firestore.DocumentRef, error) {
	return getCollection[Team](ctx, season.Collection(TEAMS_COLLECTION))
}
