package importsheet

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	DryRun     bool
	Force      bool
	NoProgress bool

	FirestoreClient *fs.Client

	// Path is a local file or gs://bucket/path.
	Path string
	// Kind is the collection the sheet holds: teams, players, or games.
	Kind   string
	Season int
	// Sheet is the worksheet name. Empty reads the first sheet.
	Sheet string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
