package league

import (
	"fmt"
	"strings"
)

// Record is a team's win-loss-tie record and points.
type Record struct {
	Wins          int `json:"wins" yaml:"wins"`
	Losses        int `json:"losses" yaml:"losses"`
	Ties          int `json:"ties" yaml:"ties"`
	PointsFor     int `json:"points_for" yaml:"points_for"`
	PointsAgainst int `json:"points_against" yaml:"points_against"`
}

// Played is the number of decided games.
func (r Record) Played() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPct counts a tie as half a win. A team with no games has a win percentage of 0.
func (r Record) WinPct() float64 {
	n := r.Played()
	if n == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(n)
}

// PointDiff is points scored minus points allowed.
func (r Record) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

func (r Record) String() string {
	if r.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// Records derives every team's record from a list of games, keyed by canonical abbreviation.
// Games without both scores are skipped. Only regular-season weeks up to and including throughWeek count; throughWeek <= 0 counts every week.
func Records(games []Game, throughWeek int) map[string]Record {
	out := make(map[string]Record)
	for _, g := range games {
		if !g.Played() {
			continue
		}
		if throughWeek > 0 && g.Week > throughWeek {
			continue
		}
		hs, as := *g.HomeScore, *g.AwayScore
		homeAbbr := CanonicalAbbreviation(strings.ToUpper(g.Home))
		awayAbbr := CanonicalAbbreviation(strings.ToUpper(g.Away))
		home := out[homeAbbr]
		away := out[awayAbbr]
		home.PointsFor += hs
		home.PointsAgainst += as
		away.PointsFor += as
		away.PointsAgainst += hs
		switch {
		case hs > as:
			home.Wins++
			away.Losses++
		case hs < as:
			home.Losses++
			away.Wins++
		default:
			home.Ties++
			away.Ties++
		}
		out[homeAbbr] = home
		out[awayAbbr] = away
	}
	return out
}
