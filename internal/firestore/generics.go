package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func getCollection[T Team | Player | Game](ctx context.Context, col *fs.CollectionRef) ([]T, []*fs.DocumentRef, error) {
	iter := col.Documents(ctx)
	defer iter.Stop()
	out := make([]T, 0)
	refs := make([]*fs.DocumentRef, 0)
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error getting %s snapshot: %w", col.ID, err)
		}
		var t T
		err = ss.DataTo(&t)
		if err != nil {
			return nil, nil, fmt.Errorf("error getting %s snapshot data: %w", col.ID, err)
		}
		out = append(out, t)
		refs = append(refs, ss.Ref)
	}
	return out, refs, nil
}
