package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/pdrpinto/gridpath"
)

var (
	openColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blockedColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	pathColor    = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	startColor   = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	goalColor    = color.RGBA{R: 100, G: 120, B: 255, A: 255}
)

// gridImage satisfies image.Image, drawing each cell as a cellPixels square.
type gridImage struct {
	grid       *gridpath.Grid
	onPath     map[int]bool
	cellPixels int
}

func (m *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.grid.Width()*m.cellPixels, m.grid.Height()*m.cellPixels)
}

func (m *gridImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return color.Transparent
	}
	p := gridpath.Point{X: x / m.cellPixels, Y: y / m.cellPixels}
	if !m.grid.Passable(p) {
		return blockedColor
	}
	// Path cells get a one pixel margin so neighbouring cells stay distinct.
	if m.onPath[m.grid.Index(p)] {
		ox, oy := x%m.cellPixels, y%m.cellPixels
		if ox > 0 && oy > 0 && ox < m.cellPixels-1 && oy < m.cellPixels-1 {
			return pathColor
		}
	}
	return openColor
}

func marker(size int, c color.Color) image.Image {
	pic := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pic.Set(x, y, c)
		}
	}
	return pic
}

// Image rasterizes grid with path overlaid and the endpoints marked.
// cellPixels must be at least 3.
func Image(grid *gridpath.Grid, start, goal gridpath.Point, path []int, cellPixels int) (*image.RGBA, error) {
	if cellPixels < 3 {
		return nil, fmt.Errorf("cell size %d too small, need at least 3 pixels", cellPixels)
	}
	onPath := make(map[int]bool, len(path))
	for _, index := range path {
		onPath[index] = true
	}
	base := &gridImage{grid: grid, onPath: onPath, cellPixels: cellPixels}

	composite := image_utils.NewCompositeImage()
	if e := composite.AddImage(image_utils.ToRGBA(base), image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("error setting base grid image: %w", e)
	}
	for _, endpoint := range [...]struct {
		point gridpath.Point
		color color.Color
	}{{start, startColor}, {goal, goalColor}} {
		pos := image.Pt(endpoint.point.X*cellPixels, endpoint.point.Y*cellPixels)
		if e := composite.AddImage(marker(cellPixels, endpoint.color), pos); e != nil {
			return nil, fmt.Errorf("error adding endpoint marker: %w", e)
		}
	}
	return image_utils.ToRGBA(composite), nil
}
