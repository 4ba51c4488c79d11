package main

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/cache"
	"github.com/reallyasi9/nflstats/internal/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/nflapi"
	"github.com/sirupsen/logrus"
)

// sourceFlags selects where season data is read from.
type sourceFlags struct {
	Source string `help:"Where to read season data." enum:"api,firestore" default:"api"`
}

// openSource returns the named source and a function that releases its connections.
func (g *globalCmd) openSource(ctx context.Context, name string) (league.Source, func(), error) {
	switch name {
	case "firestore":
		client, err := g.firestoreClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		return firestore.NewStore(client), func() { client.Close() }, nil

	case "api":
		c, closer, err := g.apiClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, closer, nil
	}
	return nil, nil, fmt.Errorf("unknown source '%s'", name)
}

func (g *globalCmd) apiClient(ctx context.Context) (*nflapi.Client, func(), error) {
	if g.APIURL == "" {
		return nil, nil, fmt.Errorf("the stats API needs --api-url or NFL_API_URL")
	}
	opts := []nflapi.Option{nflapi.WithKey(g.APIKey)}
	closer := func() {}
	if g.RedisURL != "" {
		rc, err := cache.Dial(ctx, g.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		opts = append(opts, nflapi.WithCache(rc))
		closer = func() {
			if err := rc.Close(); err != nil {
				logrus.WithError(err).Warn("Failed to close redis client")
			}
		}
	}
	return nflapi.New(g.APIURL, opts...), closer, nil
}

func (g *globalCmd) firestoreClient(ctx context.Context) (*fs.Client, error) {
	if g.ProjectID == "" {
		return nil, fmt.Errorf("Firestore needs --project or GCP_PROJECT")
	}
	return fs.NewClient(ctx, g.ProjectID)
}
