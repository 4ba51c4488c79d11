package importsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/reallyasi9/nflstats/internal/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/reallyasi9/nflstats/internal/tools/syncseason"
	"github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"
)

// ImportSheet loads one collection of a season from a spreadsheet and writes it to Firestore.
func ImportSheet(ctx *Context) error {
	log := logrus.WithFields(logrus.Fields{"tool": "import-sheet", "season": ctx.Season, "kind": ctx.Kind})

	r, err := report.OpenFileOrGSReader(ctx, ctx.Path)
	if err != nil {
		return fmt.Errorf("ImportSheet: failed to open '%s': %w", ctx.Path, err)
	}
	slurp, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return fmt.Errorf("ImportSheet: failed to read '%s': %w", ctx.Path, err)
	}

	recs, err := ReadRecords(slurp, ctx.Sheet)
	if err != nil {
		return fmt.Errorf("ImportSheet: %w", err)
	}
	log.WithField("records", len(recs)).Info("Read sheet")

	src, errs := NewSource(ctx.Season, ctx.Kind, recs)
	for _, e := range errs {
		log.Warnf("skipping row: %v", e)
	}
	if src == nil {
		return fmt.Errorf("ImportSheet: unknown kind '%s'", ctx.Kind)
	}

	sc := syncseason.NewContext(ctx)
	sc.DryRun = ctx.DryRun
	sc.Force = ctx.Force
	sc.NoProgress = ctx.NoProgress
	sc.FirestoreClient = ctx.FirestoreClient
	sc.Source = src
	sc.SourceName = ctx.Path
	sc.Season = ctx.Season
	sc.Collections = []string{strings.ToLower(ctx.Kind)}
	return syncseason.SyncSeason(sc)
}

// ReadRecords reads a worksheet whose first row is a header of field names.
// Blank cells are left out of the record. Rows with no values are skipped.
func ReadRecords(slurp []byte, sheetName string) ([]map[string]any, error) {
	xl, err := xlsx.OpenBinary(slurp)
	if err != nil {
		return nil, fmt.Errorf("ReadRecords: failed to open workbook: %w", err)
	}
	if len(xl.Sheets) == 0 {
		return nil, fmt.Errorf("ReadRecords: workbook has no sheets")
	}
	sheet := xl.Sheets[0]
	if sheetName != "" {
		var ok bool
		if sheet, ok = xl.Sheet[sheetName]; !ok {
			return nil, fmt.Errorf("ReadRecords: no sheet named '%s'", sheetName)
		}
	}
	if len(sheet.Rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(sheet.Rows[0].Cells))
	for i, c := range sheet.Rows[0].Cells {
		header[i] = strings.ToLower(strings.TrimSpace(c.Value))
	}

	out := make([]map[string]any, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rec := make(map[string]any)
		for i, c := range row.Cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if v := strings.TrimSpace(c.Value); v != "" {
				rec[header[i]] = v
			}
		}
		if len(rec) > 0 {
			out = append(out, rec)
		}
	}
	return out, nil
}

// NewSource converts records of one kind into a source holding only that collection.
// Records that cannot be converted are returned as errors and left out. A nil source means the kind is unknown.
func NewSource(season int, kind string, recs []map[string]any) (league.Source, []error) {
	s := league.Season{Year: season}
	var errs []error
	switch strings.ToLower(kind) {
	case firestore.TEAMS_COLLECTION:
		for i, rec := range recs {
			t, err := league.TeamFromRecord(rec)
			if err != nil {
				errs = append(errs, fmt.Errorf("row %d: %w", i+2, err))
				continue
			}
			s.Teams = append(s.Teams, t)
		}
	case firestore.PLAYERS_COLLECTION:
		for i, rec := range recs {
			p, err := league.PlayerFromRecord(rec)
			if err != nil {
				errs = append(errs, fmt.Errorf("row %d: %w", i+2, err))
				continue
			}
			s.Players = append(s.Players, p)
		}
	case firestore.GAMES_COLLECTION:
		for i, rec := range recs {
			if _, ok := rec["season"]; !ok {
				rec["season"] = fmt.Sprint(season)
			}
			g, err := league.GameFromRecord(rec)
			if err != nil {
				errs = append(errs, fmt.Errorf("row %d: %w", i+2, err))
				continue
			}
			s.Games = append(s.Games, g)
		}
	default:
		return nil, nil
	}
	return league.Memory{season: s}, errs
}
