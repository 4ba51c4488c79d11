// Package nflapi fetches raw season records from the backend stats API.
package nflapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/reallyasi9/nflstats/internal/cache"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/sirupsen/logrus"
)

// Timeout is the fixed per-request timeout.
const Timeout = 15 * time.Second

// Collection names as they appear in API paths.
const (
	TeamsCollection   = "teams"
	PlayersCollection = "players"
	GamesCollection   = "games"
)

// Client reads seasons from the API. It implements league.Source.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	cache      cache.Cache
	log        *logrus.Entry
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithKey sends key as a bearer token.
func WithKey(key string) Option {
	return func(c *Client) { c.key = key }
}

// WithCache serves responses from cc when present and stores fresh responses in it.
func WithCache(cc cache.Cache) Option {
	return func(c *Client) { c.cache = cc }
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: Timeout},
		log:        logrus.WithField("component", "nflapi"),
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Teams implements league.Source.
func (c *Client) Teams(ctx context.Context, season int) ([]league.Team, error) {
	recs, err := c.records(ctx, season, TeamsCollection)
	if err != nil {
		return nil, fmt.Errorf("Teams: %w", err)
	}
	out := make([]league.Team, 0, len(recs))
	for i, rec := range recs {
		t, err := league.TeamFromRecord(rec)
		if err != nil {
			c.log.WithFields(logrus.Fields{"season": season, "index": i}).Warnf("skipping team record: %v", err)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Players implements league.Source.
func (c *Client) Players(ctx context.Context, season int) ([]league.Player, error) {
	recs, err := c.records(ctx, season, PlayersCollection)
	if err != nil {
		return nil, fmt.Errorf("Players: %w", err)
	}
	out := make([]league.Player, 0, len(recs))
	for i, rec := range recs {
		p, err := league.PlayerFromRecord(rec)
		if err != nil {
			c.log.WithFields(logrus.Fields{"season": season, "index": i}).Warnf("skipping player record: %v", err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Games implements league.Source.
func (c *Client) Games(ctx context.Context, season int) ([]league.Game, error) {
	recs, err := c.records(ctx, season, GamesCollection)
	if err != nil {
		return nil, fmt.Errorf("Games: %w", err)
	}
	out := make([]league.Game, 0, len(recs))
	for i, rec := range recs {
		g, err := league.GameFromRecord(rec)
		if err != nil {
			c.log.WithFields(logrus.Fields{"season": season, "index": i}).Warnf("skipping game record: %v", err)
			continue
		}
		if g.Season == 0 {
			g.Season = season
		}
		out = append(out, g)
	}
	return out, nil
}

// records returns the decoded records of one collection. Only bodies that decode are cached,
// and a cached body that no longer decodes is refetched.
func (c *Client) records(ctx context.Context, season int, collection string) ([]map[string]any, error) {
	key := cache.Key(season, collection)
	if c.cache != nil {
		b, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			c.log.WithField("key", key).Warnf("cache read failed: %v", err)
		case ok:
			if recs, err := decode(b); err == nil {
				c.log.WithField("key", key).Debug("cache hit")
				return recs, nil
			}
			c.log.WithField("key", key).Warn("cached body does not decode: refetching")
		}
	}

	url := fmt.Sprintf("%s/seasons/%d/%s", c.baseURL, season, collection)
	b, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	recs, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", collection, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, b, cache.SeasonTTL(season, c.now())); err != nil {
			c.log.WithField("key", key).Warnf("cache write failed: %v", err)
		}
	}
	return recs, nil
}

func decode(body []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var recs []map[string]any
	if err := dec.Decode(&recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status=%d, body=%s", e.Method, e.URL, e.Status, e.Body)
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Add("accept", "application/json")
	if c.key != "" {
		req.Header.Add("Authorization", "Bearer "+c.key)
	}

	c.log.WithField("url", url).Debug("fetching")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: reading response body: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: http.MethodGet, URL: url, Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
