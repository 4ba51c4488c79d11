// Package roster resolves raw position codes into canonical position groups and knows which stats apply to each group.
package roster

import (
	"strings"

	"github.com/reallyasi9/nflstats/internal/stats"
)

// Group is a canonical position group.
type Group string

const (
	QB Group = "QB"
	RB Group = "RB"
	WR Group = "WR"
	TE Group = "TE"
	K  Group = "K"
	P  Group = "P"
	DL Group = "DL"
	LB Group = "LB"
	DB Group = "DB"
)

// Groups lists every canonical group in display priority order.
var Groups = []Group{QB, RB, WR, TE, K, P, DL, LB, DB}

// codes maps raw position codes, including synonyms, to their group.
// Codes absent from this table (long snappers, offensive linemen) have no group.
var codes = map[string]Group{
	"QB":   QB,
	"RB":   RB,
	"HB":   RB,
	"FB":   RB,
	"WR":   WR,
	"TE":   TE,
	"K":    K,
	"PK":   K,
	"P":    P,
	"DE":   DL,
	"DT":   DL,
	"NT":   DL,
	"DL":   DL,
	"EDGE": DL,
	"LB":   LB,
	"ILB":  LB,
	"OLB":  LB,
	"MLB":  LB,
	"CB":   DB,
	"S":    DB,
	"SS":   DB,
	"FS":   DB,
	"DB":   DB,
}

// ResolveGroup maps a raw position code to its canonical group.
// The lookup ignores case and surrounding space. Unmapped codes return false.
func ResolveGroup(code string) (Group, bool) {
	g, ok := codes[strings.ToUpper(strings.TrimSpace(code))]
	return g, ok
}

// Priority is the display order of the group: QB first, then RB, WR, TE, and the rest.
// Unknown groups sort after every known group.
func (g Group) Priority() int {
	for i, x := range Groups {
		if x == g {
			return i
		}
	}
	return len(Groups)
}

// Primary returns the group's ordered primary stats.
func (g Group) Primary() []stats.Metric {
	return catalog[g].primary
}

// Secondary returns the group's ordered secondary (advanced) stats.
func (g Group) Secondary() []stats.Metric {
	return catalog[g].secondary
}

// All returns primary then secondary stats.
func (g Group) All() []stats.Metric {
	c := catalog[g]
	out := make([]stats.Metric, 0, len(c.primary)+len(c.secondary))
	out = append(out, c.primary...)
	return append(out, c.secondary...)
}

// SortKey is the group's first primary stat, used as the default sort.
func (g Group) SortKey() stats.Metric {
	return catalog[g].primary[0]
}

// Name is the long display name of the group.
func (g Group) Name() string {
	return catalog[g].name
}

func (g Group) String() string { return string(g) }

type groupStats struct {
	name      string
	primary   []stats.Metric
	secondary []stats.Metric
}

var catalog = map[Group]groupStats{
	QB: {
		name: "Quarterbacks",
		primary: []stats.Metric{
			stats.M(stats.PassingYards, "Pass Yds"),
			stats.M(stats.PassingTDs, "Pass TD"),
			stats.Inv(stats.Interceptions, "INT"),
			stats.M(stats.CompletionPct, "Cmp%"),
			stats.M(stats.PasserRating, "Rating"),
		},
		secondary: []stats.Metric{
			stats.M(stats.YardsPerAttempt, "Y/A"),
			stats.Inv(stats.SacksTaken, "Sacked"),
			stats.M(stats.RushingYards, "Rush Yds"),
			stats.M(stats.RushingTDs, "Rush TD"),
			stats.M(stats.FantasyPointsPPR, "FPts"),
		},
	},
	RB: {
		name: "Running Backs",
		primary: []stats.Metric{
			stats.M(stats.RushingYards, "Rush Yds"),
			stats.M(stats.RushingTDs, "Rush TD"),
			stats.M(stats.YardsPerCarry, "Y/C"),
			stats.M(stats.Carries, "Att"),
			stats.M(stats.Receptions, "Rec"),
		},
		secondary: []stats.Metric{
			stats.M(stats.ReceivingYards, "Rec Yds"),
			stats.M(stats.RushingFirstDs, "Rush 1D"),
			stats.Inv(stats.FumblesLost, "Fum Lost"),
			stats.M(stats.ScrimmageYards, "Scrim Yds"),
			stats.M(stats.FantasyPointsPPR, "FPts"),
		},
	},
	WR: {
		name: "Wide Receivers",
		primary: []stats.Metric{
			stats.M(stats.ReceivingYards, "Rec Yds"),
			stats.M(stats.Receptions, "Rec"),
			stats.M(stats.ReceivingTDs, "Rec TD"),
			stats.M(stats.Targets, "Tgt"),
			stats.M(stats.YardsPerCatch, "Y/R"),
		},
		secondary: []stats.Metric{
			stats.M(stats.CatchPct, "Catch%"),
			stats.M(stats.TargetShare, "Tgt Share"),
			stats.M(stats.YardsAfterCatch, "YAC"),
			stats.M(stats.ReceivingFirstDs, "Rec 1D"),
			stats.M(stats.FantasyPointsPPR, "FPts"),
		},
	},
	TE: {
		name: "Tight Ends",
		primary: []stats.Metric{
			stats.M(stats.ReceivingYards, "Rec Yds"),
			stats.M(stats.Receptions, "Rec"),
			stats.M(stats.ReceivingTDs, "Rec TD"),
			stats.M(stats.Targets, "Tgt"),
			stats.M(stats.YardsPerCatch, "Y/R"),
		},
		secondary: []stats.Metric{
			stats.M(stats.CatchPct, "Catch%"),
			stats.M(stats.YardsAfterCatch, "YAC"),
			stats.M(stats.ReceivingFirstDs, "Rec 1D"),
			stats.M(stats.FantasyPointsPPR, "FPts"),
		},
	},
	K: {
		name: "Kickers",
		primary: []stats.Metric{
			stats.M(stats.FieldGoalsMade, "FGM"),
			stats.M(stats.FieldGoalPct, "FG%"),
			stats.M(stats.FieldGoalLong, "Long"),
			stats.M(stats.ExtraPointPct, "XP%"),
		},
		secondary: []stats.Metric{
			stats.M(stats.FieldGoalAtt, "FGA"),
			stats.M(stats.FantasyPointsPPR, "FPts"),
		},
	},
	P: {
		name: "Punters",
		primary: []stats.Metric{
			stats.M(stats.PuntAverage, "Avg"),
			stats.M(stats.PuntNetAvg, "Net"),
			stats.M(stats.PuntsInside20, "In20"),
			stats.M(stats.Punts, "Punts"),
		},
		secondary: []stats.Metric{
			stats.Inv(stats.Touchbacks, "TB"),
		},
	},
	DL: {
		name: "Defensive Line",
		primary: []stats.Metric{
			stats.M(stats.Sacks, "Sacks"),
			stats.M(stats.TacklesForLoss, "TFL"),
			stats.M(stats.QBHits, "QB Hits"),
			stats.M(stats.Tackles, "Tkl"),
		},
		secondary: []stats.Metric{
			stats.M(stats.ForcedFumbles, "FF"),
			stats.M(stats.SoloTackles, "Solo"),
			stats.M(stats.PassesDefended, "PD"),
		},
	},
	LB: {
		name: "Linebackers",
		primary: []stats.Metric{
			stats.M(stats.Tackles, "Tkl"),
			stats.M(stats.Sacks, "Sacks"),
			stats.M(stats.TacklesForLoss, "TFL"),
			stats.M(stats.DefInterception, "INT"),
		},
		secondary: []stats.Metric{
			stats.M(stats.SoloTackles, "Solo"),
			stats.M(stats.PassesDefended, "PD"),
			stats.M(stats.ForcedFumbles, "FF"),
			stats.M(stats.QBHits, "QB Hits"),
		},
	},
	DB: {
		name: "Defensive Backs",
		primary: []stats.Metric{
			stats.M(stats.DefInterception, "INT"),
			stats.M(stats.PassesDefended, "PD"),
			stats.M(stats.Tackles, "Tkl"),
			stats.M(stats.ForcedFumbles, "FF"),
		},
		secondary: []stats.Metric{
			stats.M(stats.SoloTackles, "Solo"),
			stats.M(stats.TacklesForLoss, "TFL"),
			stats.M(stats.Sacks, "Sacks"),
		},
	},
}

// Generic is the small stat list shared by every group. It is used when a comparison spans groups with different stat sets.
var Generic = []stats.Metric{
	stats.M(stats.Games, "G"),
	stats.M(stats.FantasyPointsPPR, "FPts"),
	stats.M(stats.ScrimmageYards, "Scrim Yds"),
	stats.M(stats.TotalTouchdowns, "TD"),
}
