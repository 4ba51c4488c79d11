package exportboard

import (
	"context"
	"io"
	"os"

	"github.com/reallyasi9/nflstats/internal/league"
)

type Context struct {
	context.Context

	DryRun bool

	Source league.Source
	Season int
	// Group limits the players sheet to one position group. Empty exports every player.
	Group string

	// Output is a local path or gs://bucket/object. When empty, or on a dry run, rows are printed to Out.
	Output string
	Out    io.Writer
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Out: os.Stdout}
}
