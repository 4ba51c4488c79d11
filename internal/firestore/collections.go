package firestore

import (
	"context"
	"fmt"
	"io"

	fs "cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/segmentio/fasthash/jody"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection is an ordered set of documents ready to be written under one collection reference.
type Collection interface {
	// Name is the collection path relative to the season document.
	Name() string
	Ref(int) *fs.DocumentRef
	Datum(int) interface{}
	FprintDatum(io.Writer, int) (int, error)
	Len() int
}

type collection[T fmt.Stringer] struct {
	name string
	col  *fs.CollectionRef
	ids  []string
	data []T
}

func (c collection[T]) Name() string { return c.name }

// Ref returns nil when the collection has no parent reference.
func (c collection[T]) Ref(i int) *fs.DocumentRef {
	if c.col == nil {
		return nil
	}
	return c.col.Doc(c.ids[i])
}

func (c collection[T]) Datum(i int) interface{} { return c.data[i] }

func (c collection[T]) FprintDatum(w io.Writer, i int) (int, error) {
	return fmt.Fprint(w, c.data[i].String())
}

func (c collection[T]) Len() int { return len(c.data) }

// NewTeamCollection prepares team documents under season. Season may be nil for a dry run.
func NewTeamCollection(season *fs.DocumentRef, teams []league.Team) Collection {
	c := collection[Team]{name: TEAMS_COLLECTION, col: subCollection(season, TEAMS_COLLECTION)}
	for _, t := range teams {
		c.ids = append(c.ids, t.Abbreviation)
		c.data = append(c.data, NewTeam(t))
	}
	return c
}

// NewPlayerCollection prepares player documents under season.
func NewPlayerCollection(season *fs.DocumentRef, players []league.Player) Collection {
	c := collection[Player]{name: PLAYERS_COLLECTION, col: subCollection(season, PLAYERS_COLLECTION)}
	for _, p := range players {
		c.ids = append(c.ids, p.ID)
		c.data = append(c.data, NewPlayer(p))
	}
	return c
}

// NewGameCollection prepares game documents under season.
func NewGameCollection(season *fs.DocumentRef, games []league.Game) Collection {
	c := collection[Game]{name: GAMES_COLLECTION, col: subCollection(season, GAMES_COLLECTION)}
	for _, g := range games {
		c.ids = append(c.ids, g.ID)
		c.data = append(c.data, NewGame(g))
	}
	return c
}

func subCollection(season *fs.DocumentRef, name string) *fs.CollectionRef {
	if season == nil {
		return nil
	}
	return season.Collection(name)
}

// Fingerprint hashes the printed contents of every document in order.
func Fingerprint(c Collection) string {
	h := jody.HashString64(c.Name())
	for i := 0; i < c.Len(); i++ {
		h = jody.AddString64(h, fmt.Sprint(c.Datum(i)))
	}
	return fmt.Sprintf("%016x", h)
}

type TransactionIterator struct {
	UpdateFcn func(*fs.Transaction, *fs.DocumentRef, interface{}) error
}

// IterateTransaction iterates the collection by `n` elements at a time and uses the given function to write to Firestore.
// Documents that do not yet exist are created; existing documents are passed to UpdateFcn.
func (ti TransactionIterator) IterateTransaction(ctx context.Context, client *fs.Client, c Collection, n int) <-chan error {
	out := make(chan error)

	go func() {
		defer close(out)
		for ll := 0; ll < c.Len(); ll += n {
			ul := ll + n
			if ul > c.Len() {
				ul = c.Len()
			}
			err := client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
				// all reads must happen before any write
				creates := make([]int, 0, ul-ll)
				updates := make([]int, 0, ul-ll)
				for i := ll; i < ul; i++ {
					if _, err := tx.Get(c.Ref(i)); status.Code(err) == codes.NotFound {
						creates = append(creates, i)
					} else if err != nil {
						return err
					} else {
						updates = append(updates, i)
					}
				}
				for _, i := range creates {
					if err := tx.Create(c.Ref(i), c.Datum(i)); err != nil {
						return err
					}
				}
				for _, i := range updates {
					if err := ti.UpdateFcn(tx, c.Ref(i), c.Datum(i)); err != nil {
						return err
					}
				}
				return nil
			})
			out <- err
		}
	}()

	return out
}

// Overwrite replaces existing documents.
func Overwrite(tx *fs.Transaction, ref *fs.DocumentRef, datum interface{}) error {
	return tx.Set(ref, datum)
}

// ExistsError is returned when a write would replace an existing document without permission.
type ExistsError string

func (e ExistsError) Error() string {
	return fmt.Sprintf("document %s already exists: use --force to overwrite", string(e))
}

// Refuse fails on existing documents.
func Refuse(_ *fs.Transaction, ref *fs.DocumentRef, _ interface{}) error {
	return ExistsError(ref.Path)
}

// DryRun prints every document path and datum in the collection.
func DryRun(w io.Writer, c Collection) (int, error) {
	n := 0
	for i := 0; i < c.Len(); i++ {
		ref := c.Ref(i)
		nn := 0
		var err error
		if ref == nil {
			nn, err = fmt.Fprintln(w, "(nil ref)")
		} else {
			nn, err = fmt.Fprintln(w, ref.Path)
		}
		n += nn
		if err != nil {
			return n, err
		}
		nn, err = c.FprintDatum(w, i)
		n += nn
		if err != nil {
			return n, err
		}
		nn, _ = fmt.Fprintln(w)
		n += nn
	}
	return n, nil
}
