package report

import (
	"fmt"
	"strings"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/ranking"
	"github.com/reallyasi9/nflstats/internal/roster"
	"github.com/reallyasi9/nflstats/internal/stats"
)

// UnknownEntityError is returned when a requested team, player, or position does not exist.
type UnknownEntityError struct {
	Kind string
	ID   string
}

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.Kind, e.ID)
}

// Subject is one compared entity.
type Subject struct {
	ID    string            `json:"id" yaml:"id"`
	Name  string            `json:"name" yaml:"name"`
	Group string            `json:"group,omitempty" yaml:"group,omitempty"`
	Grade ranking.Composite `json:"grade" yaml:"grade"`
}

// Tally counts the metrics each side of a head-to-head leads.
type Tally struct {
	A    int `json:"a" yaml:"a"`
	B    int `json:"b" yaml:"b"`
	Even int `json:"even" yaml:"even"`
}

// QuadrantView places the compared entities on one scatter plot. Averages come from the whole population.
type QuadrantView struct {
	Family ranking.Family  `json:"family" yaml:"family"`
	X      stats.Metric    `json:"x" yaml:"x"`
	Y      stats.Metric    `json:"y" yaml:"y"`
	Points []ranking.Point `json:"points" yaml:"points"`
}

// Comparison is a side-by-side view of two or more entities.
type Comparison struct {
	Season   int                `json:"season" yaml:"season"`
	Subjects []Subject          `json:"subjects" yaml:"subjects"`
	Radar    []ranking.RadarRow `json:"radar" yaml:"radar"`
	// HeadToHead and Tally are set only for exactly two subjects.
	HeadToHead []ranking.Delta `json:"head_to_head,omitempty" yaml:"head_to_head,omitempty"`
	Tally      *Tally          `json:"tally,omitempty" yaml:"tally,omitempty"`
	Quadrants  []QuadrantView  `json:"quadrants" yaml:"quadrants"`
}

type axes struct {
	family ranking.Family
	x, y   stats.Metric
}

var teamAxes = []axes{
	{ranking.Overall, stats.M(stats.OffensivePPG, "Pts/G"), stats.Inv(stats.DefensivePPG, "Pts Allowed/G")},
	{ranking.Offensive, stats.M(stats.OffensiveYPG, "Yds/G"), stats.M(stats.OffensivePPG, "Pts/G")},
	{ranking.Defensive, stats.M(stats.Takeaways, "Takeaways"), stats.Inv(stats.DefensiveYPG, "Yds Allowed/G")},
}

// SplitIDs splits a comma-separated id list, dropping blanks.
func SplitIDs(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func tally(deltas []ranking.Delta) *Tally {
	a, b, even := ranking.Tally(deltas)
	return &Tally{A: a, B: b, Even: even}
}

func selectedPoints(pts []ranking.Point, ids []string) []ranking.Point {
	out := make([]ranking.Point, 0, len(ids))
	for _, id := range ids {
		for _, p := range pts {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// CompareTeams compares the teams with the given abbreviations (case-insensitive) against the whole league.
func CompareTeams(season int, teams []league.EnrichedTeam, ids []string) (Comparison, error) {
	byID := make(map[string]league.EnrichedTeam, len(teams))
	for _, t := range teams {
		byID[strings.ToUpper(t.Abbreviation)] = t
	}
	selected := make([]league.EnrichedTeam, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[league.CanonicalAbbreviation(strings.ToUpper(strings.TrimSpace(id)))]
		if !ok {
			t, ok = byID[strings.ToUpper(strings.TrimSpace(id))]
		}
		if !ok {
			return Comparison{}, UnknownEntityError{Kind: "team", ID: id}
		}
		selected = append(selected, t)
	}

	metrics := league.TeamMetrics()
	lines := stats.Lines(teams)
	c := Comparison{Season: season, Subjects: make([]Subject, len(selected))}
	selIDs := make([]string, len(selected))
	for i, t := range selected {
		selIDs[i] = t.Abbreviation
		c.Subjects[i] = Subject{
			ID:    t.Abbreviation,
			Name:  t.Name,
			Group: string(t.Division),
			Grade: ranking.CompositeGrade(t.Stats, metrics, lines),
		}
	}
	c.Radar = ranking.NormalizeForRadar(league.TeamRadarMetrics, selected, teams)
	if len(selected) == 2 {
		c.HeadToHead = ranking.HeadToHead(metrics, selected[0].Stats, selected[1].Stats)
		c.Tally = tally(c.HeadToHead)
	}
	for _, ax := range teamAxes {
		pts := ranking.Scatter(ax.x, ax.y, teams, nil, ax.family)
		c.Quadrants = append(c.Quadrants, QuadrantView{Family: ax.family, X: ax.x, Y: ax.y, Points: selectedPoints(pts, selIDs)})
	}
	return c, nil
}

// ComparePlayers compares the players with the given IDs.
//
// When every player shares a group, the radar and head-to-head use that group's primary stats and the group as
// population. Otherwise they use the stats shared by all groups against every player.
func ComparePlayers(season int, players []league.Player, ids []string) (Comparison, error) {
	byID := make(map[string]league.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	selected := make([]league.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[strings.TrimSpace(id)]
		if !ok {
			return Comparison{}, UnknownEntityError{Kind: "player", ID: id}
		}
		selected = append(selected, p)
	}

	metrics := roster.RadarMetrics(selected)
	population := roster.ComparisonPopulation(selected, players)
	c := Comparison{Season: season, Subjects: make([]Subject, len(selected))}
	selIDs := make([]string, len(selected))
	for i, p := range selected {
		selIDs[i] = p.ID
		s := Subject{ID: p.ID, Name: p.Name}
		if g, ok := roster.GroupOf(p); ok {
			s.Group = string(g)
		}
		if grade, ok := roster.GradePlayer(p, players); ok {
			s.Grade = grade
		}
		c.Subjects[i] = s
	}
	c.Radar = ranking.NormalizeForRadar(metrics, selected, population)
	if len(selected) == 2 {
		c.HeadToHead = ranking.HeadToHead(metrics, selected[0].Stats, selected[1].Stats)
		c.Tally = tally(c.HeadToHead)
	}

	ax := axes{family: ranking.Overall, x: stats.M(stats.ScrimmageYards, "Scrim Yds"), y: stats.M(stats.TotalTouchdowns, "TD")}
	groupOf := func(p league.Player) string {
		g, _ := roster.GroupOf(p)
		return string(g)
	}
	if g, ok := roster.SharedGroup(selected); ok && len(g.Primary()) >= 2 {
		ax = axes{family: playerFamily(g), x: g.Primary()[0], y: g.Primary()[1]}
		groupOf = nil
	}
	pts := ranking.Scatter(ax.x, ax.y, population, groupOf, ax.family)
	c.Quadrants = []QuadrantView{{Family: ax.family, X: ax.x, Y: ax.y, Points: selectedPoints(pts, selIDs)}}
	return c, nil
}

func playerFamily(g roster.Group) ranking.Family {
	switch g {
	case roster.DL, roster.LB, roster.DB:
		return ranking.Defensive
	}
	return ranking.Offensive
}
