// Package report assembles ranked boards and comparisons from a season's population and renders them.
//
// Percentiles are always computed against the full population handed to a constructor.
// Filters only decide which rows are shown.
package report

import (
	"sort"
	"strings"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/ranking"
	"github.com/reallyasi9/nflstats/internal/roster"
	"github.com/reallyasi9/nflstats/internal/stats"
)

// Cell is one metric of one row.
type Cell struct {
	Metric stats.Metric `json:"metric" yaml:"metric"`
	// Value is nil when the stat is missing.
	Value      *float64 `json:"value" yaml:"value"`
	Percentile int      `json:"percentile" yaml:"percentile"`
	// Grade is nil when the stat is missing.
	Grade *ranking.Grade `json:"grade" yaml:"grade"`
}

// rankers caches one Ranker per population and stat key.
type rankers map[string]map[stats.Key]ranking.Ranker

func (r rankers) cell(population string, lines []stats.Line, line stats.Line, m stats.Metric) Cell {
	c := Cell{Metric: m}
	v, ok := line.Get(m.Key)
	if !ok {
		return c
	}
	byKey, ok := r[population]
	if !ok {
		byKey = make(map[stats.Key]ranking.Ranker)
		r[population] = byKey
	}
	rk, ok := byKey[m.Key]
	if !ok {
		col := make([]float64, 0, len(lines))
		for _, l := range lines {
			if x, ok := l.Get(m.Key); ok {
				col = append(col, x)
			}
		}
		rk = ranking.NewRanker(col)
		byKey[m.Key] = rk
	}
	p := rk.Rank(v)
	g := ranking.GradeFor(p, m.Inverted)
	c.Value = &v
	c.Percentile = p
	c.Grade = &g
	return c
}

// TeamRow is one team on a TeamBoard.
type TeamRow struct {
	league.EnrichedTeam `yaml:",inline"`

	Overall ranking.Composite `json:"overall" yaml:"overall"`
	Offense ranking.Composite `json:"offense" yaml:"offense"`
	Defense ranking.Composite `json:"defense" yaml:"defense"`
	Cells   []Cell            `json:"cells" yaml:"cells"`
}

// TeamBoard is every shown team ranked against the whole league.
type TeamBoard struct {
	Season  int            `json:"season" yaml:"season"`
	Metrics []stats.Metric `json:"metrics" yaml:"metrics"`
	Rows    []TeamRow      `json:"rows" yaml:"rows"`
}

// NewTeamBoard ranks teams, keeping the rows for which keep returns true (nil keeps all).
// Rows are ordered by overall score, then win percentage, then abbreviation.
func NewTeamBoard(season int, teams []league.EnrichedTeam, keep func(league.EnrichedTeam) bool) TeamBoard {
	metrics := league.TeamMetrics()
	lines := stats.Lines(teams)
	rk := make(rankers)
	b := TeamBoard{Season: season, Metrics: metrics, Rows: make([]TeamRow, 0, len(teams))}
	for _, t := range teams {
		if keep != nil && !keep(t) {
			continue
		}
		row := TeamRow{
			EnrichedTeam: t,
			Overall:      ranking.CompositeGrade(t.Stats, metrics, lines),
			Offense:      ranking.CompositeGrade(t.Stats, league.TeamOffense, lines),
			Defense:      ranking.CompositeGrade(t.Stats, league.TeamDefense, lines),
			Cells:        make([]Cell, len(metrics)),
		}
		for i, m := range metrics {
			row.Cells[i] = rk.cell("", lines, t.Stats, m)
		}
		b.Rows = append(b.Rows, row)
	}
	sort.SliceStable(b.Rows, func(i, j int) bool {
		a, c := b.Rows[i], b.Rows[j]
		if a.Overall.Score != c.Overall.Score {
			return a.Overall.Score > c.Overall.Score
		}
		if a.WinPct != c.WinPct {
			return a.WinPct > c.WinPct
		}
		return a.Abbreviation < c.Abbreviation
	})
	return b
}

// PlayerRow is one player on a PlayerBoard.
type PlayerRow struct {
	league.Player `yaml:",inline"`

	// Group is empty for positions that do not resolve.
	Group roster.Group `json:"group,omitempty" yaml:"group,omitempty"`
	// Overall is set only when Graded.
	Overall ranking.Composite `json:"overall" yaml:"overall"`
	Graded  bool              `json:"graded" yaml:"graded"`
	Cells   []Cell            `json:"cells" yaml:"cells"`
}

// PlayerBoard is every shown player ranked against their position group.
type PlayerBoard struct {
	Season int `json:"season" yaml:"season"`
	// Group is empty for a board across all groups.
	Group   roster.Group   `json:"group,omitempty" yaml:"group,omitempty"`
	Metrics []stats.Metric `json:"metrics" yaml:"metrics"`
	Rows    []PlayerRow    `json:"rows" yaml:"rows"`
}

// NewPlayerBoard ranks players.
//
// With a group, the board shows that group's players and stats. Without one, it shows every player
// on the stats shared by all groups. Either way each player's percentiles are computed against every
// player of the same group, and query only filters the rows shown. Rows are in roster.Sort order.
//
// A player whose position maps to no group (a long snapper, say) only appears on the board without
// a group. Its cells are ranked against every player, not a positional peer group, so its row has
// Graded false and no composite grade.
func NewPlayerBoard(season int, players []league.Player, group roster.Group, query string) PlayerBoard {
	metrics := roster.Generic
	if group != "" {
		metrics = group.All()
	}

	grouped, _ := roster.ByGroup(players)
	groupLines := make(map[roster.Group][]stats.Line, len(grouped))
	for g, ps := range grouped {
		groupLines[g] = stats.Lines(ps)
	}
	allLines := stats.Lines(players)

	shown := league.FilterPlayers(players, league.NameContains(query))
	if group != "" {
		shown = league.FilterPlayers(shown, func(p league.Player) bool {
			g, ok := roster.GroupOf(p)
			return ok && g == group
		})
	}
	roster.Sort(shown)

	rk := make(rankers)
	b := PlayerBoard{Season: season, Group: group, Metrics: metrics, Rows: make([]PlayerRow, len(shown))}
	for i, p := range shown {
		row := PlayerRow{Player: p, Cells: make([]Cell, len(metrics))}
		popName, lines := "*", allLines
		if g, ok := roster.GroupOf(p); ok {
			row.Group = g
			popName, lines = string(g), groupLines[g]
			row.Overall = ranking.CompositeGrade(p.Stats, g.Primary(), lines)
			row.Graded = true
		}
		for j, m := range metrics {
			row.Cells[j] = rk.cell(popName, lines, p.Stats, m)
		}
		b.Rows[i] = row
	}
	return b
}

// ParseGroupFilter resolves a board's group argument. The empty string and "all" mean every group.
func ParseGroupFilter(s string) (roster.Group, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	g, ok := roster.ResolveGroup(s)
	if !ok {
		return "", UnknownEntityError{Kind: "position", ID: s}
	}
	return g, nil
}
