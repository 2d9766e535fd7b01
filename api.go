package gridpath

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

const (
	// NoPath is the distance reported when the goal cannot be reached.
	NoPath = -1
	// Unvisited marks distance map cells the search has not reached.
	Unvisited = -1
)

// Errors returned by the grid constructors and the search entry points.
// Callers match them with errors.Is; most are wrapped with detail.
var (
	ErrNilGrid           = errors.New("nil grid")
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrCellCount         = errors.New("cell count does not match grid dimensions")
	ErrOutOfBounds       = errors.New("coordinate outside grid")
	ErrBlocked           = errors.New("coordinate is a blocked cell")
	ErrBufferTooSmall    = errors.New("output buffer too small")
	ErrNoPath            = errors.New("no path found")
	ErrStepLimit         = errors.New("step limit reached")
)

// FindPath computes the shortest four-connected path from start to goal.
//
// On success it returns the number of steps and writes the row-major indices
// of the cells after start, up to and including goal, into out[:distance];
// the remainder of out is zeroed. If goal is unreachable it returns NoPath
// with a nil error and zeroes out. Any error leaves out untouched.
func FindPath(grid *Grid, start, goal Point, out []int) (int, error) {
	s, err := newSearch(grid, start, goal)
	if err != nil {
		return NoPath, err
	}
	if err := s.run(context.Background(), 0); err != nil {
		return NoPath, err
	}
	if !s.found {
		clear(out)
		return NoPath, nil
	}
	if s.distance > len(out) {
		return NoPath, fmt.Errorf("%w: path needs %d entries, buffer holds %d", ErrBufferTooSmall, s.distance, len(out))
	}
	s.writePath(out)
	return s.distance, nil
}

// Result contains the outcome of a search
type Result struct {
	Distance      int
	Path          []Point
	Indices       []int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	StepLimit       int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches SearchAll runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithStepLimit caps the number of cell expansions per search. Zero means
// unlimited.
func WithStepLimit(steps int) Option {
	return func(options *Options) { options.StepLimit = steps }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Search runs the same engine as FindPath but allocates the path itself and
// honours cancellation and WithStepLimit. An unreachable goal is reported as
// ErrNoPath alongside a Result with Found unset.
func Search(
	contextObject context.Context,
	grid *Grid,
	startNode Point,
	goalNode Point,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)

	s, err := newSearch(grid, startNode, goalNode)
	if err != nil {
		return Result{Distance: NoPath}, err
	}
	if err := s.run(contextObject, searchOptions.StepLimit); err != nil {
		return Result{Distance: NoPath, ExpandedNodes: s.expandedNodes}, err
	}
	if !s.found {
		return Result{Distance: NoPath, ExpandedNodes: s.expandedNodes}, ErrNoPath
	}

	indices := make([]int, s.distance)
	s.writePath(indices)
	path := make([]Point, len(indices))
	for i, index := range indices {
		path[i] = grid.PointAt(index)
	}
	return Result{
		Distance:      s.distance,
		Path:          path,
		Indices:       indices,
		ExpandedNodes: s.expandedNodes,
		Found:         true,
	}, nil
}
