package teamboard

import (
	"context"
	"io"
	"os"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
)

type Context struct {
	context.Context

	Source league.Source
	Season int
	Format report.Format
	Out    io.Writer

	Conference league.Conference
	Division   league.Division
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Format: report.FormatTable, Out: os.Stdout}
}
