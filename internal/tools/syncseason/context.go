package syncseason

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
)

type Context struct {
	context.Context

	DryRun     bool
	Force      bool
	NoProgress bool

	FirestoreClient *fs.Client
	Source          league.Source

	// SourceName is recorded on the season document.
	SourceName string
	Season     int

	// Collections limits the sync to the named collections (teams, players, games). Empty syncs all three.
	Collections []string

	// BatchSize is the number of documents written per transaction.
	BatchSize int
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, BatchSize: 500}
}
