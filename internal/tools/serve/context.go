package serve

import (
	"context"
	"net"
	"time"

	"github.com/reallyasi9/nflstats/internal/league"
)

type Context struct {
	context.Context

	Source  league.Source
	Addr    string
	Origins []string

	// Listener, when set, is used instead of listening on Addr.
	Listener net.Listener

	ShutdownTimeout time.Duration
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Addr: ":8080", ShutdownTimeout: 10 * time.Second}
}
