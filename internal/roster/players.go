package roster

import (
	"sort"
	"strings"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/ranking"
	"github.com/reallyasi9/nflstats/internal/stats"
)

// GroupOf resolves the player's position code.
func GroupOf(p league.Player) (Group, bool) {
	return ResolveGroup(p.Position)
}

// Population returns the players whose position resolves to g, in input order.
func Population(players []league.Player, g Group) []league.Player {
	return league.FilterPlayers(players, func(p league.Player) bool {
		pg, ok := GroupOf(p)
		return ok && pg == g
	})
}

// ByGroup partitions players by group. Players with unresolved positions are returned separately.
func ByGroup(players []league.Player) (grouped map[Group][]league.Player, unresolved []league.Player) {
	grouped = make(map[Group][]league.Player)
	for _, p := range players {
		g, ok := GroupOf(p)
		if !ok {
			unresolved = append(unresolved, p)
			continue
		}
		grouped[g] = append(grouped[g], p)
	}
	return
}

// Sort orders players in place: by group priority, then by the group's key stat descending
// (players without a value last), then by name. Unresolved positions sort after every group.
func Sort(players []league.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		ga, oka := GroupOf(a)
		gb, okb := GroupOf(b)
		pa, pb := ga.Priority(), gb.Priority()
		if !oka {
			pa = len(Groups)
		}
		if !okb {
			pb = len(Groups)
		}
		if pa != pb {
			return pa < pb
		}
		if oka {
			key := ga.SortKey().Key
			va, hasA := a.Stats.Get(key)
			vb, hasB := b.Stats.Get(key)
			switch {
			case hasA && !hasB:
				return true
			case !hasA && hasB:
				return false
			case hasA && hasB && va != vb:
				return va > vb
			}
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// GradePlayer computes the composite grade of p over its group's primary stats,
// against every player in population that resolves to the same group.
// Players whose position does not resolve are not graded.
func GradePlayer(p league.Player, population []league.Player) (ranking.Composite, bool) {
	g, ok := GroupOf(p)
	if !ok {
		return ranking.Composite{}, false
	}
	peers := stats.Lines(Population(population, g))
	return ranking.CompositeGrade(p.Stats, g.Primary(), peers), true
}

// SharedGroup returns the group every selected player resolves to, if there is exactly one.
func SharedGroup(selected []league.Player) (Group, bool) {
	if len(selected) == 0 {
		return "", false
	}
	first, ok := GroupOf(selected[0])
	if !ok {
		return "", false
	}
	for _, p := range selected[1:] {
		if g, ok := GroupOf(p); !ok || g != first {
			return "", false
		}
	}
	return first, true
}

// RadarMetrics picks the spokes for comparing the selected players:
// the shared group's primary stats when there is one, Generic otherwise.
func RadarMetrics(selected []league.Player) []stats.Metric {
	if g, ok := SharedGroup(selected); ok {
		return g.Primary()
	}
	return Generic
}

// ComparisonPopulation is the population the selected players are normalized against:
// the shared group when there is one, every player otherwise.
func ComparisonPopulation(selected, players []league.Player) []league.Player {
	if g, ok := SharedGroup(selected); ok {
		return Population(players, g)
	}
	return players
}
