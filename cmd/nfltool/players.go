package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/reallyasi9/nflstats/internal/roster"
	"github.com/reallyasi9/nflstats/internal/tools/compare"
	"github.com/reallyasi9/nflstats/internal/tools/playerboard"
)

type playerBoardCmd struct {
	sourceFlags
	formatFlags
	Group  string `help:"Position code or group to show. Defaults to every group." short:"g"`
	Search string `help:"Show only players whose name contains this text." short:"q"`
	Limit  int    `help:"Show at most this many players." short:"n"`
	Season int    `arg:"" help:"Season to rank." required:""`
}

func (a *playerBoardCmd) Run(g *globalCmd) error {
	ctx := playerboard.NewContext(context.Background())
	var err error
	if ctx.Format, err = report.ParseFormat(a.Format); err != nil {
		return err
	}
	ctx.Group = a.Group
	ctx.Search = a.Search
	ctx.Limit = a.Limit
	ctx.Season = a.Season

	src, closer, err := g.openSource(ctx, a.Source)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Source = src
	return playerboard.PlayerBoard(ctx)
}

type comparePlayersCmd struct {
	sourceFlags
	formatFlags
	Group   string   `help:"Position code or group to choose from interactively." short:"g"`
	Season  int      `arg:"" help:"Season to compare." required:""`
	Players []string `arg:"" optional:"" help:"Player IDs. When omitted, players are chosen interactively."`
}

func (a *comparePlayersCmd) Run(g *globalCmd) error {
	ctx := compare.NewContext(context.Background())
	var err error
	if ctx.Format, err = report.ParseFormat(a.Format); err != nil {
		return err
	}
	ctx.Kind = compare.Players
	ctx.Group = a.Group
	ctx.Season = a.Season
	ctx.IDs = splitAll(a.Players)

	src, closer, err := g.openSource(ctx, a.Source)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Source = src
	return compare.Compare(ctx)
}

type groupCmd struct {
	Codes []string `arg:"" help:"Position codes to resolve." required:""`
}

func (a *groupCmd) Run(g *globalCmd) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Code", "Group", "Name", "Sort By"})
	for _, code := range a.Codes {
		grp, ok := roster.ResolveGroup(code)
		if !ok {
			tw.AppendRow(table.Row{code, "-", "unresolved", "-"})
			continue
		}
		tw.AppendRow(table.Row{code, grp, grp.Name(), grp.SortKey().Label})
	}
	tw.Render()
	for _, code := range a.Codes {
		if _, ok := roster.ResolveGroup(code); !ok {
			return fmt.Errorf("position code '%s' does not belong to a group", code)
		}
	}
	return nil
}
