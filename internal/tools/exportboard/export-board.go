package exportboard

import (
	"fmt"
	"strings"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/sirupsen/logrus"
)

// ExportBoard writes the team and player boards of a season to an Excel workbook.
func ExportBoard(ctx *Context) error {
	group, err := report.ParseGroupFilter(ctx.Group)
	if err != nil {
		return fmt.Errorf("ExportBoard: %w", err)
	}
	s, err := league.Load(ctx, ctx.Source, ctx.Season)
	if err != nil {
		return fmt.Errorf("ExportBoard: failed to load season %d: %w", ctx.Season, err)
	}

	teams := report.NewTeamBoard(ctx.Season, s.EnrichedTeams(), nil)
	players := report.NewPlayerBoard(ctx.Season, s.Players, group, "")
	xl, err := report.Workbook(teams, players)
	if err != nil {
		return fmt.Errorf("ExportBoard: failed to make workbook: %w", err)
	}
	defer xl.Close()

	if ctx.Output == "" || ctx.DryRun {
		if ctx.DryRun {
			logrus.WithField("tool", "export-board").Warnf("DRY RUN: would write %d teams and %d players to '%s'", len(teams.Rows), len(players.Rows), ctx.Output)
		}
		for _, sheet := range xl.GetSheetList() {
			fmt.Fprintf(ctx.Out, "# %s\n", sheet)
			rows, err := xl.Rows(sheet)
			if err != nil {
				return fmt.Errorf("ExportBoard: failed to get Excel row iterator: %w", err)
			}
			for rows.Next() {
				row, err := rows.Columns()
				if err != nil {
					return fmt.Errorf("ExportBoard: failed to get Excel cells from row iterator: %w", err)
				}
				fmt.Fprintln(ctx.Out, strings.Join(row, ", "))
			}
			if err := rows.Close(); err != nil {
				return fmt.Errorf("ExportBoard: %w", err)
			}
		}
		return nil
	}

	writer, err := report.OpenFileOrGSWriter(ctx, ctx.Output)
	if err != nil {
		return fmt.Errorf("ExportBoard: failed to open '%s': %w", ctx.Output, err)
	}
	if _, err := xl.WriteTo(writer); err != nil {
		writer.Close()
		return fmt.Errorf("ExportBoard: failed to write Excel file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("ExportBoard: failed to close '%s': %w", ctx.Output, err)
	}
	logrus.WithFields(logrus.Fields{"tool": "export-board", "output": ctx.Output}).Info("Wrote workbook")
	return nil
}
