package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
)

// Store reads season snapshots. It implements league.Source.
type Store struct {
	client *fs.Client
}

// NewStore wraps a Firestore client.
func NewStore(client *fs.Client) *Store {
	return &Store{client: client}
}

func (s *Store) season(ctx context.Context, year int) (*fs.DocumentRef, error) {
	_, ref, err := GetSeason(ctx, s.client, year)
	return ref, err
}

// Teams implements league.Source.
func (s *Store) Teams(ctx context.Context, year int) ([]league.Team, error) {
	ref, err := s.season(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("Teams: %w", err)
	}
	docs, _, err := GetTeams(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("Teams: %w", err)
	}
	out := make([]league.Team, len(docs))
	for i, d := range docs {
		out[i] = d.League()
	}
	return out, nil
}

// Players implements league.Source.
func (s *Store) Players(ctx context.Context, year int) ([]league.Player, error) {
	ref, err := s.season(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("Players: %w", err)
	}
	docs, _, err := GetPlayers(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("Players: %w", err)
	}
	out := make([]league.Player, len(docs))
	for i, d := range docs {
		out[i] = d.League()
	}
	return out, nil
}

// Games implements league.Source.
func (s *Store) Games(ctx context.Context, year int) ([]league.Game, error) {
	ref, err := s.season(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("Games: %w", err)
	}
	docs, refs, err := GetGames(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("Games: %w", err)
	}
	out := make([]league.Game, len(docs))
	for i, d := range docs {
		out[i] = d.League(refs[i].ID)
	}
	return out, nil
}
