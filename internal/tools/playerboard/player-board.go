package playerboard

import (
	"fmt"

	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/sirupsen/logrus"
)

// PlayerBoard prints the season's player board.
func PlayerBoard(ctx *Context) error {
	group, err := report.ParseGroupFilter(ctx.Group)
	if err != nil {
		return fmt.Errorf("PlayerBoard: %w", err)
	}
	players, err := ctx.Source.Players(ctx, ctx.Season)
	if err != nil {
		return fmt.Errorf("PlayerBoard: failed to load players for season %d: %w", ctx.Season, err)
	}
	b := report.NewPlayerBoard(ctx.Season, players, group, ctx.Search)
	logrus.WithFields(logrus.Fields{"tool": "player-board", "players": len(players), "shown": len(b.Rows)}).Debug("Built board")
	if ctx.Limit > 0 && len(b.Rows) > ctx.Limit {
		b.Rows = b.Rows[:ctx.Limit]
	}
	if err := report.Write(ctx.Out, ctx.Format, b); err != nil {
		return fmt.Errorf("PlayerBoard: %w", err)
	}
	return nil
}
