package gridpath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair submitted to SearchAll.
type Query struct {
	Start Point
	Goal  Point
}

// Answer is the outcome of one Query. Err holds per-query failures such as
// ErrNoPath or ErrBlocked; they do not stop the rest of the batch.
type Answer struct {
	Query  Query
	Result Result
	Err    error
}

// SearchAll runs independent searches over a shared grid using up to
// WithWorkers goroutines. Each search owns its distance map and frontier.
// Answers are returned in query order. The batch only fails as a whole when
// contextObject is cancelled.
func SearchAll(
	contextObject context.Context,
	grid *Grid,
	queries []Query,
	options ...Option,
) ([]Answer, error) {
	searchOptions := applyOptions(options)
	answers := make([]Answer, len(queries))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		i, query := i, query
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			result, err := Search(groupContext, grid, query.Start, query.Goal, options...)
			if err != nil && groupContext.Err() != nil {
				return groupContext.Err()
			}
			answers[i] = Answer{Query: query, Result: result, Err: err}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return answers, nil
}
