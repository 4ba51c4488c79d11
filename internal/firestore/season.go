package firestore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/reallyasi9/nflstats/internal/league"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SEASONS_COLLECTION is the path to the seasons collection in Firestore.
const SEASONS_COLLECTION = "seasons"

// Season is the header document of a season snapshot.
type Season struct {
	// Year acts like a name for the season. It is the year that the season begins.
	Year int `firestore:"year"`

	// Updated is when the snapshot was last written.
	Updated time.Time `firestore:"updated"`

	// Source describes where the snapshot came from, e.g. the API URL or a spreadsheet path.
	Source string `firestore:"source"`

	// Counts is the number of documents in each sub-collection.
	Counts map[string]int `firestore:"counts"`

	// Fingerprints are hashes of the last written contents of each sub-collection.
	// A sync whose fingerprint matches skips that collection.
	Fingerprints map[string]string `firestore:"fingerprints"`
}

func (s Season) String() string {
	var sb strings.Builder
	sb.WriteString("Season\n")
	ss := make([]string, 0)
	ss = append(ss, treeInt("Year", 0, false, s.Year))
	ss = append(ss, treeString("Updated", 0, false, s.Updated.Format(time.UnixDate)))
	ss = append(ss, treeString("Source", 0, false, s.Source))
	ss = append(ss, treeStringMap("Counts", 0, false, intStrings(s.Counts)))
	ss = append(ss, treeStringMap("Fingerprints", 0, true, s.Fingerprints))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// SeasonRef is the document reference of a season.
func SeasonRef(client *firestore.Client, year int) *firestore.DocumentRef {
	return client.Collection(SEASONS_COLLECTION).Doc(strconv.Itoa(year))
}

// GetSeason gets the season defined by `year`. If `year<0`, the most recent season is returned.
// A missing season is a league.NoSeasonError.
func GetSeason(ctx context.Context, client *firestore.Client, year int) (Season, *firestore.DocumentRef, error) {
	var s Season
	if year >= 0 {
		ref := SeasonRef(client, year)
		snap, err := ref.Get(ctx)
		if status.Code(err) == codes.NotFound {
			return s, ref, league.NoSeasonError(year)
		}
		if err != nil {
			return s, ref, fmt.Errorf("GetSeason: failed to get season %d: %w", year, err)
		}
		if err := snap.DataTo(&s); err != nil {
			return s, ref, fmt.Errorf("GetSeason: failed to read season %d: %w", year, err)
		}
		return s, ref, nil
	}

	docs, err := client.Collection(SEASONS_COLLECTION).OrderBy("year", firestore.Desc).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return s, nil, fmt.Errorf("GetSeason: failed to query seasons: %w", err)
	}
	if len(docs) == 0 {
		return s, nil, league.NoSeasonError(year)
	}
	if err = docs[0].DataTo(&s); err != nil {
		return s, nil, fmt.Errorf("GetSeason: failed to read season: %w", err)
	}
	return s, docs[0].Ref, nil
}

func intStrings(m map[string]int) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = strconv.Itoa(v)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
