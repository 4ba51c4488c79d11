// Package league holds the raw team, player, and game records of a season and the transforms that derive records and standings from them.
package league

import (
	"fmt"
	"strings"

	"github.com/reallyasi9/nflstats/internal/stats"
)

// Team is a raw team record as delivered by a data source.
type Team struct {
	// Abbreviation is the team's short capitalized code, e.g. KC or NYJ.
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`

	// Name is the display name, e.g. Kansas City Chiefs.
	Name string `json:"name" yaml:"name"`

	// Logo is a link to the team logo. It may be empty.
	Logo string `json:"logo,omitempty" yaml:"logo,omitempty"`

	Stats stats.Line `json:"stats" yaml:"stats"`
}

// SubjectID is the team abbreviation.
func (t Team) SubjectID() string { return t.Abbreviation }

// StatLine returns the team's stats.
func (t Team) StatLine() stats.Line { return t.Stats }

func (t Team) String() string {
	if t.Name == "" {
		return t.Abbreviation
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.Abbreviation)
}

// TeamFromRecord builds a Team from a flat record.
// Identity is read from "abbreviation" (or "team_abbr", "team"), "name" (or "team_name"), and "logo" (or "team_logo_espn").
func TeamFromRecord(rec map[string]any) (Team, error) {
	t := Team{
		Abbreviation: strings.ToUpper(firstString(rec, "abbreviation", "team_abbr", "team")),
		Name:         firstString(rec, "name", "team_name"),
		Logo:         firstString(rec, "logo", "team_logo_espn"),
		Stats:        stats.FromRecord(rec),
	}
	if t.Abbreviation == "" {
		return t, fmt.Errorf("TeamFromRecord: record has no team abbreviation")
	}
	return t, nil
}

func firstString(rec map[string]any, names ...string) string {
	for _, n := range names {
		v, ok := rec[n]
		if !ok || v == nil {
			continue
		}
		switch x := v.(type) {
		case string:
			if s := strings.TrimSpace(x); s != "" {
				return s
			}
		case fmt.Stringer:
			return x.String()
		default:
			return fmt.Sprint(x)
		}
	}
	return ""
}
