package stats

import "sort"

// Key names a single statistic carried by a team or player record.
// The set of keys is closed: records may carry other fields, but only fields whose name matches a Key are kept as stats.
type Key string

// Player stat keys. Names follow the field names used by the stats API.
const (
	Games            Key = "games"
	FantasyPointsPPR Key = "fantasy_points_ppr"
	ScrimmageYards   Key = "scrimmage_yards"
	TotalTouchdowns  Key = "total_tds"

	Completions     Key = "completions"
	PassAttempts    Key = "attempts"
	PassingYards    Key = "passing_yards"
	PassingTDs      Key = "passing_tds"
	Interceptions   Key = "interceptions"
	CompletionPct   Key = "completion_pct"
	PasserRating    Key = "passer_rating"
	YardsPerAttempt Key = "yards_per_attempt"
	SacksTaken      Key = "sacks_taken"

	Carries        Key = "carries"
	RushingYards   Key = "rushing_yards"
	RushingTDs     Key = "rushing_tds"
	YardsPerCarry  Key = "yards_per_carry"
	RushingFirstDs Key = "rushing_first_downs"
	FumblesLost    Key = "fumbles_lost"

	Targets          Key = "targets"
	Receptions       Key = "receptions"
	ReceivingYards   Key = "receiving_yards"
	ReceivingTDs     Key = "receiving_tds"
	YardsPerCatch    Key = "yards_per_reception"
	CatchPct         Key = "catch_pct"
	TargetShare      Key = "target_share"
	YardsAfterCatch  Key = "receiving_yards_after_catch"
	ReceivingFirstDs Key = "receiving_first_downs"

	FieldGoalsMade Key = "fg_made"
	FieldGoalAtt   Key = "fg_att"
	FieldGoalPct   Key = "fg_pct"
	FieldGoalLong  Key = "fg_long"
	ExtraPointPct  Key = "pat_pct"

	Punts         Key = "punts"
	PuntAverage   Key = "punt_avg"
	PuntNetAvg    Key = "punt_net_avg"
	PuntsInside20 Key = "punts_inside_20"
	Touchbacks    Key = "touchbacks"

	Tackles         Key = "tackles"
	SoloTackles     Key = "solo_tackles"
	TacklesForLoss  Key = "tackles_for_loss"
	Sacks           Key = "sacks"
	QBHits          Key = "qb_hits"
	DefInterception Key = "def_interceptions"
	PassesDefended  Key = "passes_defended"
	ForcedFumbles   Key = "forced_fumbles"
)

// Team stat keys.
const (
	OffensivePPG    Key = "offensive_ppg"
	DefensivePPG    Key = "defensive_ppg"
	OffensiveYPG    Key = "offensive_ypg"
	DefensiveYPG    Key = "defensive_ypg"
	PassYPG         Key = "pass_ypg"
	RushYPG         Key = "rush_ypg"
	PassYPGAllowed  Key = "pass_ypg_allowed"
	RushYPGAllowed  Key = "rush_ypg_allowed"
	ThirdDownPct    Key = "third_down_pct"
	RedZonePct      Key = "red_zone_pct"
	Turnovers       Key = "turnovers"
	Takeaways       Key = "takeaways"
	TurnoverDiff    Key = "turnover_diff"
	TeamSacks       Key = "team_sacks"
	SacksAllowed    Key = "sacks_allowed"
	PenaltyYPG      Key = "penalty_ypg"
	TimeOfPossesion Key = "time_of_possession"
	PointDiff       Key = "point_differential"
)

var known = map[Key]struct{}{}

func init() {
	for _, k := range []Key{
		Games, FantasyPointsPPR, ScrimmageYards, TotalTouchdowns,
		Completions, PassAttempts, PassingYards, PassingTDs, Interceptions, CompletionPct, PasserRating, YardsPerAttempt, SacksTaken,
		Carries, RushingYards, RushingTDs, YardsPerCarry, RushingFirstDs, FumblesLost,
		Targets, Receptions, ReceivingYards, ReceivingTDs, YardsPerCatch, CatchPct, TargetShare, YardsAfterCatch, ReceivingFirstDs,
		FieldGoalsMade, FieldGoalAtt, FieldGoalPct, FieldGoalLong, ExtraPointPct,
		Punts, PuntAverage, PuntNetAvg, PuntsInside20, Touchbacks,
		Tackles, SoloTackles, TacklesForLoss, Sacks, QBHits, DefInterception, PassesDefended, ForcedFumbles,
		OffensivePPG, DefensivePPG, OffensiveYPG, DefensiveYPG, PassYPG, RushYPG, PassYPGAllowed, RushYPGAllowed,
		ThirdDownPct, RedZonePct, Turnovers, Takeaways, TurnoverDiff, TeamSacks, SacksAllowed, PenaltyYPG, TimeOfPossesion, PointDiff,
	} {
		known[k] = struct{}{}
	}
}

// LookupKey returns the Key with the given name, if the name is one of the known stat keys.
func LookupKey(name string) (Key, bool) {
	k := Key(name)
	_, ok := known[k]
	return k, ok
}

// Keys returns every known stat key in lexical order.
func Keys() []Key {
	out := make([]Key, 0, len(known))
	for k := range known {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
