package gridpath

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Point is a cell coordinate. X grows east, Y grows south.
type Point struct {
	X int
	Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Grid is an immutable field of passability flags addressed row-major by
// y*width+x. A Grid may be shared between goroutines.
type Grid struct {
	width    int
	height   int
	passable []bool
}

// NewGrid constructs a grid from a row-major slice of passability flags
// (true = passable). The slice is copied.
func NewGrid(width, height int, cells []bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrCellCount, len(cells), width, height)
	}
	passable := make([]bool, len(cells))
	copy(passable, cells)
	return &Grid{width: width, height: height, passable: passable}, nil
}

// NewGridFromFlags builds a grid from byte flags where 1 marks a passable
// cell and any other value a blocked one.
func NewGridFromFlags(width, height int, flags []byte) (*Grid, error) {
	cells := make([]bool, len(flags))
	for i, f := range flags {
		cells[i] = f == 1
	}
	return NewGrid(width, height, cells)
}

// ParseGrid reads a text map, one row per line. '.' and '1' are passable,
// '#' and '0' are blocked. Blank lines are ignored and all rows must have
// the same length.
func ParseGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	var (
		cells []bool
		width int
		rows  int
	)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if rows == 0 {
			width = len(text)
		} else if len(text) != width {
			return nil, fmt.Errorf("line %d: row has %d cells, want %d", line, len(text), width)
		}
		for col, char := range text {
			switch char {
			case '.', '1':
				cells = append(cells, true)
			case '#', '0':
				cells = append(cells, false)
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected cell %q", line, col+1, char)
			}
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewGrid(width, rows, cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.passable) }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Index returns the row-major index of p. p must be in bounds.
func (g *Grid) Index(p Point) int { return p.Y*g.width + p.X }

// PointAt is the inverse of Index.
func (g *Grid) PointAt(index int) Point {
	return Point{X: index % g.width, Y: index / g.width}
}

// Passable reports whether p is inside the grid and not blocked.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.passable[g.Index(p)]
}

// Cells returns a copy of the passability flags.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.passable))
	copy(out, g.passable)
	return out
}
