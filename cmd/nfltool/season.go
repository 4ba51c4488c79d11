package main

import (
	"context"

	"github.com/reallyasi9/nflstats/internal/tools/importsheet"
	"github.com/reallyasi9/nflstats/internal/tools/syncseason"
)

type syncSeasonCmd struct {
	DryRun     bool     `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool     `help:"Overwrite existing documents and rewrite unchanged collections." xor:"Force,DryRun"`
	NoProgress bool     `help:"Do not show progress bars."`
	Batch      int      `help:"Documents written per transaction." default:"500"`
	Only       []string `help:"Collections to sync." placeholder:"teams|players|games"`
	Season     int      `arg:"" help:"Season to sync." required:""`
}

func (a *syncSeasonCmd) Run(g *globalCmd) error {
	ctx := syncseason.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	ctx.NoProgress = a.NoProgress
	ctx.BatchSize = a.Batch
	ctx.Season = a.Season
	ctx.Collections = a.Only

	src, closer, err := g.apiClient(ctx)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Source = src
	ctx.SourceName = g.APIURL

	if !a.DryRun {
		ctx.FirestoreClient, err = g.firestoreClient(ctx)
		if err != nil {
			return err
		}
		defer ctx.FirestoreClient.Close()
	}
	return syncseason.SyncSeason(ctx)
}

type importSheetCmd struct {
	DryRun     bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool   `help:"Overwrite existing documents and rewrite unchanged collections." xor:"Force,DryRun"`
	NoProgress bool   `help:"Do not show progress bars."`
	Kind       string `help:"Collection the sheet holds." enum:"teams,players,games" default:"players"`
	Sheet      string `help:"Worksheet to read. Defaults to the first sheet."`
	Season     int    `arg:"" help:"Season to import into." required:""`
	File       string `arg:"" help:"Spreadsheet to import: a local path or gs://bucket/path." required:""`
}

func (a *importSheetCmd) Run(g *globalCmd) error {
	ctx := importsheet.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	ctx.NoProgress = a.NoProgress
	ctx.Kind = a.Kind
	ctx.Sheet = a.Sheet
	ctx.Season = a.Season
	ctx.Path = a.File

	if !a.DryRun {
		var err error
		ctx.FirestoreClient, err = g.firestoreClient(ctx)
		if err != nil {
			return err
		}
		defer ctx.FirestoreClient.Close()
	}
	return importsheet.ImportSheet(ctx)
}
