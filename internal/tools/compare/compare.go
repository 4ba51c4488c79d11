package compare

import (
	"fmt"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/reallyasi9/nflstats/internal/roster"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Compare prints a radar, quadrant, and (for exactly two subjects) head-to-head comparison.
func Compare(ctx *Context) error {
	log := logrus.WithFields(logrus.Fields{"tool": "compare", "kind": ctx.Kind, "season": ctx.Season})

	var c report.Comparison
	switch ctx.Kind {
	case Teams:
		s, err := league.Load(ctx, ctx.Source, ctx.Season)
		if err != nil {
			return fmt.Errorf("Compare: failed to load season %d: %w", ctx.Season, err)
		}
		teams := s.EnrichedTeams()
		ids := ctx.IDs
		if len(ids) == 0 {
			if ids, err = pickTeams(ctx, teams); err != nil {
				return fmt.Errorf("Compare: %w", err)
			}
		}
		if err := enough(ids); err != nil {
			return fmt.Errorf("Compare: %w", err)
		}
		log.WithField("ids", ids).Debug("Comparing teams")
		if c, err = report.CompareTeams(ctx.Season, teams, ids); err != nil {
			return fmt.Errorf("Compare: %w", err)
		}

	case Players:
		players, err := ctx.Source.Players(ctx, ctx.Season)
		if err != nil {
			return fmt.Errorf("Compare: failed to load players for season %d: %w", ctx.Season, err)
		}
		ids := ctx.IDs
		if len(ids) == 0 {
			if ids, err = pickPlayers(ctx, players); err != nil {
				return fmt.Errorf("Compare: %w", err)
			}
		}
		if err := enough(ids); err != nil {
			return fmt.Errorf("Compare: %w", err)
		}
		log.WithField("ids", ids).Debug("Comparing players")
		if c, err = report.ComparePlayers(ctx.Season, players, ids); err != nil {
			return fmt.Errorf("Compare: %w", err)
		}

	default:
		return fmt.Errorf("Compare: unknown kind %q", ctx.Kind)
	}

	if err := report.Write(ctx.Out, ctx.Format, c); err != nil {
		return fmt.Errorf("Compare: %w", err)
	}
	return nil
}

// minSubjects is the fewest subjects a comparison accepts.
const minSubjects = 2

func enough(ids []string) error {
	if len(ids) < minSubjects {
		return fmt.Errorf("at least %d subjects are required, got %d", minSubjects, len(ids))
	}
	return nil
}

func pickTeams(ctx *Context, teams []league.EnrichedTeam) ([]string, error) {
	options := make([]string, len(teams))
	sortBy := make([]string, len(teams))
	byOption := make(map[string]string, len(teams))
	for i, t := range teams {
		options[i] = fmt.Sprintf("%s - %s", t.Abbreviation, t.Name)
		sortBy[i] = t.Abbreviation
		byOption[options[i]] = t.Abbreviation
	}
	sort.Sort(ByOther[string, string]{options, sortBy})
	return pick(ctx, "Which teams do you want to compare?", options, byOption)
}

func pickPlayers(ctx *Context, players []league.Player) ([]string, error) {
	group, err := report.ParseGroupFilter(ctx.Group)
	if err != nil {
		return nil, err
	}
	if group != "" {
		players = roster.Population(players, group)
	}
	players = append([]league.Player(nil), players...)
	roster.Sort(players)

	options := make([]string, len(players))
	byOption := make(map[string]string, len(players))
	for i, p := range players {
		options[i] = fmt.Sprintf("%s [%s]", p, p.ID)
		byOption[options[i]] = p.ID
	}
	return pick(ctx, "Which players do you want to compare?", options, byOption)
}

func pick(ctx *Context, message string, options []string, byOption map[string]string) ([]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("nothing to choose from")
	}
	if ctx.Pick == nil {
		return nil, fmt.Errorf("no subjects given")
	}
	picked, err := ctx.Pick(message, options)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(picked))
	for _, p := range picked {
		id, ok := byOption[p]
		if !ok {
			return nil, fmt.Errorf("unknown choice %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SurveyPick asks on the terminal for at least two of options.
func SurveyPick(message string, options []string) ([]string, error) {
	q := &survey.MultiSelect{
		Message:  message,
		Options:  options,
		PageSize: 16,
	}
	a := []string{}
	err := survey.AskOne(q, &a, survey.WithRemoveSelectNone(), survey.WithValidator(survey.MinItems(minSubjects)))
	return a, err
}

// ByOther sorts Slice by the values in SortBy.
type ByOther[X interface{}, T constraints.Ordered] struct {
	Slice  []X
	SortBy []T
}

func (sbo ByOther[X, T]) Len() int { return len(sbo.Slice) }
func (sbo ByOther[X, T]) Swap(i, j int) {
	sbo.Slice[i], sbo.Slice[j] = sbo.Slice[j], sbo.Slice[i]
	sbo.SortBy[i], sbo.SortBy[j] = sbo.SortBy[j], sbo.SortBy[i]
}
func (sbo ByOther[X, T]) Less(i, j int) bool { return sbo.SortBy[i] < sbo.SortBy[j] }
