package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/reallyasi9/nflstats/internal/tools/compare"
	"github.com/reallyasi9/nflstats/internal/tools/teamboard"
)

type formatFlags struct {
	Format string `help:"Output format." enum:"table,json,yaml" default:"table" short:"f"`
}

type teamBoardCmd struct {
	sourceFlags
	formatFlags
	Conference string `help:"Show only teams in this conference (AFC or NFC)."`
	Division   string `help:"Show only teams in this division, e.g. \"NFC North\"."`
	Season     int    `arg:"" help:"Season to rank." required:""`
}

func (a *teamBoardCmd) Run(g *globalCmd) error {
	ctx := teamboard.NewContext(context.Background())
	var err error
	if ctx.Format, err = report.ParseFormat(a.Format); err != nil {
		return err
	}
	if ctx.Conference, err = parseConference(a.Conference); err != nil {
		return err
	}
	if ctx.Division, err = parseDivision(a.Division); err != nil {
		return err
	}
	ctx.Season = a.Season

	src, closer, err := g.openSource(ctx, a.Source)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Source = src
	return teamboard.TeamBoard(ctx)
}

type compareTeamsCmd struct {
	sourceFlags
	formatFlags
	Season int      `arg:"" help:"Season to compare." required:""`
	Teams  []string `arg:"" optional:"" help:"Team abbreviations. When omitted, teams are chosen interactively."`
}

func (a *compareTeamsCmd) Run(g *globalCmd) error {
	ctx := compare.NewContext(context.Background())
	var err error
	if ctx.Format, err = report.ParseFormat(a.Format); err != nil {
		return err
	}
	ctx.Kind = compare.Teams
	ctx.Season = a.Season
	ctx.IDs = splitAll(a.Teams)

	src, closer, err := g.openSource(ctx, a.Source)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Source = src
	return compare.Compare(ctx)
}

// splitAll accepts both "KC BUF" and "KC,BUF".
func splitAll(args []string) []string {
	var out []string
	for _, a := range args {
		out = append(out, report.SplitIDs(a)...)
	}
	return out
}

func parseConference(s string) (league.Conference, error) {
	switch c := league.Conference(strings.ToUpper(strings.TrimSpace(s))); c {
	case "", league.AFC, league.NFC:
		return c, nil
	}
	return "", fmt.Errorf("unknown conference '%s'", s)
}

func parseDivision(s string) (league.Division, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, d := range []league.Division{
		league.AFCEast, league.AFCNorth, league.AFCSouth, league.AFCWest,
		league.NFCEast, league.NFCNorth, league.NFCSouth, league.NFCWest,
	} {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown division '%s'", s)
}
