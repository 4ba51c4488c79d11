package teamboard

import (
	"fmt"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/sirupsen/logrus"
)

// TeamBoard prints the season's team board, optionally limited to one conference or division.
func TeamBoard(ctx *Context) error {
	s, err := league.Load(ctx, ctx.Source, ctx.Season)
	if err != nil {
		return fmt.Errorf("TeamBoard: failed to load season %d: %w", ctx.Season, err)
	}
	logrus.WithFields(logrus.Fields{"tool": "team-board", "teams": len(s.Teams), "games": len(s.Games)}).Debug("Loaded season")

	keep := func(t league.EnrichedTeam) bool {
		return league.InConference(ctx.Conference)(t) && league.InDivision(ctx.Division)(t)
	}
	b := report.NewTeamBoard(ctx.Season, s.EnrichedTeams(), keep)
	if len(b.Rows) == 0 {
		logrus.WithField("tool", "team-board").Warn("No teams match the filter")
	}
	if err := report.Write(ctx.Out, ctx.Format, b); err != nil {
		return fmt.Errorf("TeamBoard: %w", err)
	}
	return nil
}
