package streak

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the streak record for one user.
type Fetcher interface {
	Fetch(ctx context.Context, user string) (Record, error)
}

// Aggregate fetches every roster member concurrently and waits for all
// of them. The result is all-or-nothing: the first failure fails the
// whole aggregation and cancels the fetches still in flight. On success
// the records are in roster order, never completion order.
func Aggregate(ctx context.Context, fetcher Fetcher, roster []string) ([]Record, error) {
	g, ctx := errgroup.WithContext(ctx)

	records := make([]Record, len(roster))
	for i, user := range roster {
		i, user := i, user
		g.Go(func() error {
			record, err := fetcher.Fetch(ctx, user)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
