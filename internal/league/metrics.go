package league

import "github.com/reallyasi9/nflstats/internal/stats"

// TeamOffense are the offensive team metrics in display order.
var TeamOffense = []stats.Metric{
	stats.M(stats.OffensivePPG, "Pts/G"),
	stats.M(stats.OffensiveYPG, "Yds/G"),
	stats.M(stats.PassYPG, "Pass Yds/G"),
	stats.M(stats.RushYPG, "Rush Yds/G"),
	stats.M(stats.ThirdDownPct, "3rd Dn%"),
	stats.M(stats.RedZonePct, "RZ%"),
	stats.Inv(stats.Turnovers, "Giveaways"),
	stats.Inv(stats.SacksAllowed, "Sacks Allowed"),
}

// TeamDefense are the defensive team metrics in display order.
var TeamDefense = []stats.Metric{
	stats.Inv(stats.DefensivePPG, "Pts Allowed/G"),
	stats.Inv(stats.DefensiveYPG, "Yds Allowed/G"),
	stats.Inv(stats.PassYPGAllowed, "Pass Yds Allowed/G"),
	stats.Inv(stats.RushYPGAllowed, "Rush Yds Allowed/G"),
	stats.M(stats.Takeaways, "Takeaways"),
	stats.M(stats.TeamSacks, "Sacks"),
}

// TeamRadarMetrics is the default spoke set when comparing teams.
var TeamRadarMetrics = []stats.Metric{
	stats.M(stats.OffensivePPG, "Pts/G"),
	stats.M(stats.OffensiveYPG, "Yds/G"),
	stats.Inv(stats.DefensivePPG, "Pts Allowed/G"),
	stats.Inv(stats.DefensiveYPG, "Yds Allowed/G"),
	stats.M(stats.TurnoverDiff, "TO Diff"),
	stats.M(stats.ThirdDownPct, "3rd Dn%"),
}

// TeamMetrics returns offense then defense metrics.
func TeamMetrics() []stats.Metric {
	out := make([]stats.Metric, 0, len(TeamOffense)+len(TeamDefense))
	out = append(out, TeamOffense...)
	return append(out, TeamDefense...)
}
