package playerboard

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

	// Group is a position code or group name. Empty shows every group.
	Group  string
	Search string
	// Limit caps the number of rows shown. Zero shows all.
	Limit int
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Format: report.FormatTable, Out: os.Stdout}
}
