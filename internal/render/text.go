// Package render draws grids, paths and distance maps for humans. Nothing in
// the search engine depends on it.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/gridpath"
)

type cellKind int

const (
	cellOpen cellKind = iota
	cellBlocked
	cellPath
	cellStart
	cellGoal
	cellVisited
)

var glyphs = map[cellKind]string{
	cellOpen:    ".",
	cellBlocked: "#",
	cellPath:    "*",
	cellStart:   "S",
	cellGoal:    "G",
}

// Renderer turns grids into text. With color enabled it styles cells with
// lipgloss; otherwise output is plain ASCII.
type Renderer struct {
	color  bool
	styles map[cellKind]lipgloss.Style
}

// NewRenderer returns a renderer, styled with lipgloss when color is set.
func NewRenderer(color bool) *Renderer {
	return &Renderer{
		color: color,
		styles: map[cellKind]lipgloss.Style{
			cellOpen:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			cellBlocked: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
			cellPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			cellStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			cellGoal:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			cellVisited: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		},
	}
}

func (r *Renderer) paint(kind cellKind, s string) string {
	if !r.color {
		return s
	}
	return r.styles[kind].Render(s)
}

// Grid draws grid one row per line: '.' open, '#' blocked, '*' path,
// 'S' start and 'G' goal. path holds cell indices as written by FindPath.
func (r *Renderer) Grid(grid *gridpath.Grid, start, goal gridpath.Point, path []int) string {
	onPath := make(map[int]bool, len(path))
	for _, index := range path {
		onPath[index] = true
	}
	var b strings.Builder
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := gridpath.Point{X: x, Y: y}
			kind := cellOpen
			switch {
			case p == start:
				kind = cellStart
			case p == goal:
				kind = cellGoal
			case !grid.Passable(p):
				kind = cellBlocked
			case onPath[grid.Index(p)]:
				kind = cellPath
			}
			b.WriteString(r.paint(kind, glyphs[kind]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DistanceMap draws a distance map three columns per cell: "FF" at the goal,
// the two-digit distance for reached cells, "||" for blocked cells and
// blanks for unreached open cells.
func (r *Renderer) DistanceMap(grid *gridpath.Grid, goal gridpath.Point, distances []int) string {
	var b strings.Builder
	b.WriteString("----- DIST MAP -----")
	for y := 0; y < grid.Height(); y++ {
		b.WriteByte('\n')
		for x := 0; x < grid.Width(); x++ {
			p := gridpath.Point{X: x, Y: y}
			index := grid.Index(p)
			switch {
			case p == goal:
				b.WriteString(r.paint(cellGoal, "FF"))
			case distances[index] != gridpath.Unvisited:
				b.WriteString(r.paint(cellVisited, fmt.Sprintf("%02d", distances[index])))
			case !grid.Passable(p):
				b.WriteString(r.paint(cellBlocked, "||"))
			default:
				b.WriteString("  ")
			}
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// Indices formats a path as the comma-separated index list printed by the
// CLI, for example "1,5,9,".
func Indices(path []int) string {
	var b strings.Builder
	for _, index := range path {
		b.WriteString(strconv.Itoa(index))
		b.WriteByte(',')
	}
	return b.String()
}
