package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/reallyasi9/nflstats/internal/tools/serve"
)

type serveCmd struct {
	sourceFlags
	Addr       string   `help:"Address to listen on." default:":8080" env:"ADDR"`
	CORSOrigin []string `name:"cors-origin" help:"Allowed CORS origins. Defaults to any origin." env:"CORS_ORIGINS"`
}

func (a *serveCmd) Run(g *globalCmd) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx := serve.NewContext(sigCtx)
	ctx.Addr = a.Addr
	ctx.Origins = a.CORSOrigin

	src, closer, err := g.openSource(ctx, a.Source)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Source = src
	return serve.Serve(ctx)
}
