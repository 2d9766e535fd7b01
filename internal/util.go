package internal

import "fmt"

// BreadthFirstDistance returns the number of four-connected steps between
// the cells at index start and goal of a row-major width x height field, or
// -1 when goal is unreachable. Tests and the CLI use it to cross-check the
// best-first engine.
func BreadthFirstDistance(width, height int, passable []bool, start, goal int) int {
	distances := make([]int, len(passable))
	for i := range distances {
		distances[i] = -1
	}
	distances[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			return distances[current]
		}
		x, y := current%width, current/width
		for _, next := range [...][2]int{{x - 1, y}, {x, y - 1}, {x + 1, y}, {x, y + 1}} {
			if next[0] < 0 || next[1] < 0 || next[0] >= width || next[1] >= height {
				continue
			}
			nextIndex := next[1]*width + next[0]
			if !passable[nextIndex] || distances[nextIndex] != -1 {
				continue
			}
			distances[nextIndex] = distances[current] + 1
			queue = append(queue, nextIndex)
		}
	}
	return -1
}

// CheckPath verifies that path walks from start to goal one orthogonal step
// at a time over passable cells. path excludes start and ends at goal.
func CheckPath(width int, passable []bool, start, goal int, path []int) error {
	previous := start
	for i, current := range path {
		if current < 0 || current >= len(passable) {
			return fmt.Errorf("step %d: index %d outside grid", i, current)
		}
		if !passable[current] {
			return fmt.Errorf("step %d: cell %d is blocked", i, current)
		}
		dx := current%width - previous%width
		dy := current/width - previous/width
		if dx*dx+dy*dy != 1 {
			return fmt.Errorf("step %d: %d is not adjacent to %d", i, current, previous)
		}
		previous = current
	}
	if previous != goal {
		return fmt.Errorf("path ends at %d, want %d", previous, goal)
	}
	return nil
}
