package main

import (
	"context"

	"github.com/reallyasi9/nflstats/internal/tools/exportboard"
)

type exportCmd struct {
	sourceFlags
	DryRun bool   `help:"Print the workbook rows instead of writing the file."`
	Group  string `help:"Position code or group for the players sheet. Defaults to every group." short:"g"`
	Season int    `arg:"" help:"Season to export." required:""`
	Output string `arg:"" optional:"" help:"Local path or gs://bucket/path. When omitted, rows are printed."`
}

func (a *exportCmd) Run(g *globalCmd) error {
	ctx := exportboard.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Group = a.Group
	ctx.Season = a.Season
	ctx.Output = a.Output

	src, closer, err := g.openSource(ctx, a.Source)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Source = src
	return exportboard.ExportBoard(ctx)
}
