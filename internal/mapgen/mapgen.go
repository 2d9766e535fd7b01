// Package mapgen builds grids for the CLI and the visualizer: seeded random
// maps and a fixed 20x20 demo map.
package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/pdrpinto/gridpath"
)

// DefaultDensity is the probability that a random cell is passable.
const DefaultDensity = 0.70

// Map is a generated grid together with the endpoints chosen for it.
type Map struct {
	Grid  *gridpath.Grid
	Start gridpath.Point
	Goal  gridpath.Point
	Seed  int64
}

// Random generates a width x height map. Endpoints are drawn first, then every
// cell is passable with probability density; both endpoints are always
// passable. The same seed always yields the same map.
func Random(width, height int, density float64, seed int64) (Map, error) {
	if width <= 0 || height <= 0 {
		return Map{}, fmt.Errorf("%w: %dx%d", gridpath.ErrInvalidDimensions, width, height)
	}
	if density < 0 || density > 1 {
		return Map{}, fmt.Errorf("density %v outside [0,1]", density)
	}
	r := rand.New(rand.NewSource(seed))
	start := gridpath.Point{X: r.Intn(width)}
	goal := gridpath.Point{X: r.Intn(width)}
	start.Y = r.Intn(height)
	goal.Y = r.Intn(height)

	cells := make([]bool, width*height)
	for i := range cells {
		cells[i] = r.Float64() < density
	}
	cells[start.Y*width+start.X] = true
	cells[goal.Y*width+goal.X] = true

	grid, err := gridpath.NewGrid(width, height, cells)
	if err != nil {
		return Map{}, err
	}
	return Map{Grid: grid, Start: start, Goal: goal, Seed: seed}, nil
}

var demo2020 = [...]string{
	"11111111111111111111",
	"11111111111111111111",
	"11111111111111111111",
	"11111111111111111111",
	"11111111111111111111",
	"11110000000000111111",
	"11110000000000111111",
	"00000000000000111111",
	"11111111111000111111",
	"11111111111000111111",
	"11111111111000111111",
	"11011111111000111111",
	"11000000001111111111",
	"11111111101111111111",
	"11111111101111111111",
	"11111111101111111111",
	"11111111101111111111",
	"11111111101111111111",
	"11111111101111111111",
	"11111111101111111111",
}

// Demo2020 returns the built-in 20x20 map routed from the bottom-left corner
// to (17,6).
func Demo2020() Map {
	cells := make([]bool, 0, 400)
	for _, row := range demo2020 {
		for _, c := range row {
			cells = append(cells, c == '1')
		}
	}
	grid, err := gridpath.NewGrid(20, 20, cells)
	if err != nil {
		panic(err)
	}
	return Map{
		Grid:  grid,
		Start: gridpath.Point{X: 0, Y: 19},
		Goal:  gridpath.Point{X: 17, Y: 6},
	}
}
