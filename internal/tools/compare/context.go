package compare

import (
	"context"
	"io"
	"os"

	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
)

// Kind is what is being compared.
type Kind string

const (
	Teams   Kind = "teams"
	Players Kind = "players"
)

// Picker asks the user to pick one or more options.
type Picker func(message string, options []string) ([]string, error)

type Context struct {
	context.Context

	Source league.Source
	Season int
	Format report.Format
	Out    io.Writer

	Kind Kind
	// IDs are team abbreviations or player IDs. When empty, Pick is used to choose them.
	IDs []string
	// Group limits the players offered by Pick to one position group.
	Group string

	Pick Picker
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Format: report.FormatTable, Out: os.Stdout, Kind: Teams, Pick: SurveyPick}
}
