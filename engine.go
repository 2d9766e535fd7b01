package gridpath

import (
	"container/heap"
	"context"
	"fmt"
)

// directions is the fixed neighbour order used both for expansion and for
// backtracking: west, north, east, south.
var directions = [4]Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}}

// pollInterval is how many expansions run between context checks.
const pollInterval = 256

// search holds the state of one search. It is never shared between calls.
type search struct {
	grid  *Grid
	start Point
	goal  Point

	distances []int
	openSet   frontier

	expandedNodes int
	done          bool
	found         bool
	distance      int
}

func newSearch(grid *Grid, startNode, goalNode Point) (*search, error) {
	if err := validateEndpoints(grid, startNode, goalNode); err != nil {
		return nil, err
	}

	distances := make([]int, grid.Len())
	for i := range distances {
		distances[i] = Unvisited
	}
	distances[grid.Index(startNode)] = 0

	s := &search{
		grid:      grid,
		start:     startNode,
		goal:      goalNode,
		distances: distances,
		openSet:   make(frontier, 0, 16),
		distance:  NoPath,
	}
	heap.Push(&s.openSet, frontierItem{Cell: startNode, GScore: 0, FCost: manhattan(startNode, goalNode)})
	return s, nil
}

func validateEndpoints(grid *Grid, startNode, goalNode Point) error {
	if grid == nil {
		return ErrNilGrid
	}
	for _, endpoint := range [...]struct {
		name  string
		point Point
	}{{"start", startNode}, {"goal", goalNode}} {
		if !grid.InBounds(endpoint.point) {
			return fmt.Errorf("%w: %s %v outside %dx%d", ErrOutOfBounds, endpoint.name, endpoint.point, grid.width, grid.height)
		}
		if !grid.Passable(endpoint.point) {
			return fmt.Errorf("%w: %s %v", ErrBlocked, endpoint.name, endpoint.point)
		}
	}
	return nil
}

func manhattan(from, to Point) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// advance expands the next live frontier entry and returns it. The second
// result is false once the search has finished, either because the goal
// reached the head of the frontier or because the frontier ran dry.
func (s *search) advance() (Point, bool) {
	for s.openSet.Len() > 0 {
		currentItem := s.openSet[0]
		if currentItem.Cell == s.goal {
			s.finish(true)
			return currentItem.Cell, false
		}
		heap.Pop(&s.openSet)

		currentIndex := s.grid.Index(currentItem.Cell)
		currentDistance := s.distances[currentIndex]
		// Stale duplicate: the cell was re-queued with a shorter distance.
		if currentItem.GScore > currentDistance {
			continue
		}

		s.expandedNodes++
		s.relax(currentItem.Cell, currentDistance+1)
		return currentItem.Cell, true
	}
	s.finish(false)
	return Point{}, false
}

func (s *search) relax(current Point, nextDistance int) {
	for _, dir := range directions {
		neighbor := Point{X: current.X + dir.X, Y: current.Y + dir.Y}
		if !s.grid.Passable(neighbor) {
			continue
		}
		neighborIndex := s.grid.Index(neighbor)
		known := s.distances[neighborIndex]
		if known != Unvisited && known <= nextDistance {
			continue
		}
		s.distances[neighborIndex] = nextDistance
		heap.Push(&s.openSet, frontierItem{
			Cell:   neighbor,
			GScore: nextDistance,
			FCost:  nextDistance + manhattan(neighbor, s.goal),
		})
	}
}

func (s *search) finish(found bool) {
	s.done = true
	s.found = found
	if found {
		s.distance = s.distances[s.grid.Index(s.goal)]
	}
}

// run drives the search to completion. A positive stepLimit caps the number
// of expansions.
func (s *search) run(contextObject context.Context, stepLimit int) error {
	for !s.done {
		if stepLimit > 0 && s.expandedNodes >= stepLimit && s.expansionPending() {
			return fmt.Errorf("%w: %d expansions", ErrStepLimit, stepLimit)
		}
		if s.expandedNodes%pollInterval == 0 {
			if err := contextObject.Err(); err != nil {
				return err
			}
		}
		s.advance()
	}
	return nil
}

// expansionPending drops stale entries from the head of the frontier and
// reports whether the next advance would expand a cell rather than finish.
func (s *search) expansionPending() bool {
	for s.openSet.Len() > 0 {
		head := s.openSet[0]
		if head.Cell == s.goal {
			return false
		}
		if head.GScore <= s.distances[s.grid.Index(head.Cell)] {
			return true
		}
		heap.Pop(&s.openSet)
	}
	return false
}

// writePath clears out and fills out[:s.distance] by walking the distance
// map down from the goal. out must hold at least s.distance entries.
func (s *search) writePath(out []int) {
	clear(out)
	current := s.goal
	for step := s.distance; step > 0; step-- {
		out[step-1] = s.grid.Index(current)
		for _, dir := range directions {
			neighbor := Point{X: current.X + dir.X, Y: current.Y + dir.Y}
			if s.grid.InBounds(neighbor) && s.distances[s.grid.Index(neighbor)] == step-1 {
				current = neighbor
				break
			}
		}
	}
}
