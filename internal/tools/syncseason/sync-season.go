package syncseason

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
	progressbar "github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// SyncSeason snapshots a season from ctx.Source into Firestore.
// The three collections are fetched concurrently. A collection whose fingerprint matches the stored one is skipped unless ctx.Force is set.
func SyncSeason(ctx *Context) error {
	log := logrus.WithFields(logrus.Fields{"tool": "sync-season", "season": ctx.Season})

	snap, err := fetch(ctx)
	if err != nil {
		return fmt.Errorf("SyncSeason: %w", err)
	}
	log.WithFields(logrus.Fields{
		"teams":   len(snap.Teams),
		"players": len(snap.Players),
		"games":   len(snap.Games),
	}).Info("Loaded season")

	var seasonRef *fs.DocumentRef
	var season firestore.Season
	if ctx.FirestoreClient != nil {
		season, seasonRef, err = firestore.GetSeason(ctx, ctx.FirestoreClient, ctx.Season)
		var nse league.NoSeasonError
		if err != nil && !errors.As(err, &nse) {
			return fmt.Errorf("SyncSeason: failed to get season: %w", err)
		}
	}
	season.Year = ctx.Season
	season.Source = ctx.SourceName
	season.Updated = time.Now()
	if season.Counts == nil {
		season.Counts = make(map[string]int)
	}
	if season.Fingerprints == nil {
		season.Fingerprints = make(map[string]string)
	}

	all := []firestore.Collection{
		firestore.NewTeamCollection(seasonRef, snap.Teams),
		firestore.NewPlayerCollection(seasonRef, snap.Players),
		firestore.NewGameCollection(seasonRef, snap.Games),
	}
	cols := make([]firestore.Collection, 0, len(all))
	for _, c := range all {
		if !ctx.wants(c.Name()) {
			continue
		}
		fp := firestore.Fingerprint(c)
		if !ctx.Force && season.Fingerprints[c.Name()] == fp {
			log.WithField("collection", c.Name()).Info("Unchanged since last sync: skipping")
			continue
		}
		season.Fingerprints[c.Name()] = fp
		season.Counts[c.Name()] = c.Len()
		cols = append(cols, c)
	}

	if ctx.DryRun {
		w := log.Writer()
		defer w.Close()
		log.Info("DRY RUN: would write the following to firestore:")
		fmt.Fprintf(w, "%s\n---\n", season)
		for _, c := range cols {
			log.Infof("%s:", c.Name())
			if _, err := firestore.DryRun(w, c); err != nil {
				return fmt.Errorf("SyncSeason: %w", err)
			}
			log.Info("---")
		}
		return nil
	}
	if ctx.FirestoreClient == nil {
		return fmt.Errorf("SyncSeason: no firestore client")
	}

	if len(cols) == 0 {
		log.Info("Nothing to write")
		return nil
	}

	if err := Write(ctx, cols...); err != nil {
		return fmt.Errorf("SyncSeason: %w", err)
	}

	if _, err := seasonRef.Set(ctx, &season); err != nil {
		return fmt.Errorf("SyncSeason: failed to write season document: %w", err)
	}
	log.Info("Season written")
	return nil
}

func (ctx *Context) wants(name string) bool {
	if len(ctx.Collections) == 0 {
		return true
	}
	for _, c := range ctx.Collections {
		if c == name {
			return true
		}
	}
	return false
}

// fetch reads the wanted collections concurrently.
func fetch(ctx *Context) (league.Season, error) {
	s := league.Season{Year: ctx.Season}
	var wg sync.WaitGroup
	errs := make([]error, 3)
	if ctx.wants(firestore.TEAMS_COLLECTION) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Teams, errs[0] = ctx.Source.Teams(ctx, ctx.Season)
		}()
	}
	if ctx.wants(firestore.PLAYERS_COLLECTION) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Players, errs[1] = ctx.Source.Players(ctx, ctx.Season)
		}()
	}
	if ctx.wants(firestore.GAMES_COLLECTION) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Games, errs[2] = ctx.Source.Games(ctx, ctx.Season)
		}()
	}
	wg.Wait()
	return s, errors.Join(errs...)
}

// Write stores each collection in transactions of ctx.BatchSize documents.
// New documents are created. Existing documents are overwritten with --force and refused otherwise.
func Write(ctx *Context, cols ...firestore.Collection) error {
	update := firestore.Refuse
	if ctx.Force {
		logrus.WithField("tool", "sync-season").Info("Forcing overwrite of existing documents")
		update = firestore.Overwrite
	}
	ti := firestore.TransactionIterator{UpdateFcn: update}

	batch := ctx.BatchSize
	if batch <= 0 {
		batch = 500
	}
	for _, c := range cols {
		bar := progressbar.NewOptions(c.Len(),
			progressbar.OptionSetDescription(c.Name()),
			progressbar.OptionSetVisibility(!ctx.NoProgress),
			progressbar.OptionShowCount(),
		)
		tctx, cancel := context.WithCancel(ctx)
		results := ti.IterateTransaction(tctx, ctx.FirestoreClient, c, batch)
		done := 0
		for err := range results {
			if err != nil {
				cancel()
				for range results {
				}
				return fmt.Errorf("failed running %s transaction: %w", c.Name(), err)
			}
			n := batch
			if done+n > c.Len() {
				n = c.Len() - done
			}
			done += n
			bar.Add(n)
		}
		cancel()
		bar.Finish()
	}
	return nil
}
