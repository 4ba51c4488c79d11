package league

import (
	"context"
	"fmt"
)

// Source delivers the raw records of a season.
type Source interface {
	Teams(ctx context.Context, season int) ([]Team, error)
	Players(ctx context.Context, season int) ([]Player, error)
	Games(ctx context.Context, season int) ([]Game, error)
}

// Season is a full snapshot of a season: the population every ranking is computed against.
type Season struct {
	Year    int
	Teams   []Team
	Players []Player
	Games   []Game
}

// Load reads every collection of a season from src.
func Load(ctx context.Context, src Source, year int) (Season, error) {
	s := Season{Year: year}
	var err error
	if s.Teams, err = src.Teams(ctx, year); err != nil {
		return s, err
	}
	if s.Players, err = src.Players(ctx, year); err != nil {
		return s, err
	}
	if s.Games, err = src.Games(ctx, year); err != nil {
		return s, err
	}
	return s, nil
}

// EnrichedTeams is Enrich(s.Teams, s.Games).
func (s Season) EnrichedTeams() []EnrichedTeam {
	return Enrich(s.Teams, s.Games)
}

// Memory is a Source backed by in-memory seasons.
type Memory map[int]Season

// Teams implements Source.
func (m Memory) Teams(_ context.Context, season int) ([]Team, error) {
	s, ok := m[season]
	if !ok {
		return nil, NoSeasonError(season)
	}
	return s.Teams, nil
}

// Players implements Source.
func (m Memory) Players(_ context.Context, season int) ([]Player, error) {
	s, ok := m[season]
	if !ok {
		return nil, NoSeasonError(season)
	}
	return s.Players, nil
}

// Games implements Source.
func (m Memory) Games(_ context.Context, season int) ([]Game, error) {
	s, ok := m[season]
	if !ok {
		return nil, NoSeasonError(season)
	}
	return s.Games, nil
}

// NoSeasonError is returned when a source has no data for a season.
type NoSeasonError int

func (e NoSeasonError) Error() string {
	return fmt.Sprintf("no data for season %d", int(e))
}
