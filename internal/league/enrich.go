package league

import (
	"strings"

	"github.com/reallyasi9/nflstats/internal/stats"
)

// EnrichedTeam is a Team with fields derived from the season's games and the league structure.
type EnrichedTeam struct {
	Team `yaml:",inline"`

	Record     Record     `json:"record" yaml:"record"`
	WinPct     float64    `json:"win_pct" yaml:"win_pct"`
	Conference Conference `json:"conference,omitempty" yaml:"conference,omitempty"`
	Division   Division   `json:"division,omitempty" yaml:"division,omitempty"`
}

// Enrich derives records, win percentages, and divisions for every team.
//
// The input slices are not modified: each EnrichedTeam carries its own copy of the team's stat line.
// When the source did not supply a point differential, one is derived from the record.
func Enrich(teams []Team, games []Game) []EnrichedTeam {
	records := Records(games, 0)
	out := make([]EnrichedTeam, len(teams))
	for i, t := range teams {
		abbr := CanonicalAbbreviation(strings.ToUpper(t.Abbreviation))
		rec := records[abbr]
		line := t.Stats.Clone()
		if line == nil {
			line = make(stats.Line)
		}
		if _, ok := line.Get(stats.PointDiff); !ok && rec.Played() > 0 {
			line = line.With(stats.PointDiff, float64(rec.PointDiff()))
		}
		et := EnrichedTeam{
			Team:   t,
			Record: rec,
			WinPct: rec.WinPct(),
		}
		et.Team.Stats = line
		if d, ok := DivisionOf(abbr); ok {
			et.Division = d
			et.Conference = d.Conference()
		}
		out[i] = et
	}
	return out
}

// FilterTeams returns the teams for which keep returns true. The input is not modified.
func FilterTeams(teams []EnrichedTeam, keep func(EnrichedTeam) bool) []EnrichedTeam {
	out := make([]EnrichedTeam, 0, len(teams))
	for _, t := range teams {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// InConference matches teams of the given conference. An empty conference matches every team.
func InConference(c Conference) func(EnrichedTeam) bool {
	return func(t EnrichedTeam) bool {
		return c == "" || strings.EqualFold(string(t.Conference), string(c))
	}
}

// InDivision matches teams of the given division. An empty division matches every team.
func InDivision(d Division) func(EnrichedTeam) bool {
	return func(t EnrichedTeam) bool {
		return d == "" || strings.EqualFold(string(t.Division), string(d))
	}
}
