package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func testGrid(t *testing.T) *gridpath.Grid {
	t.Helper()
	grid, err := gridpath.NewGrid(3, 2, []bool{true, true, false, true, true, true})
	require.NoError(t, err)
	return grid
}

func TestGridPlain(t *testing.T) {
	grid := testGrid(t)
	got := NewRenderer(false).Grid(grid, gridpath.Point{X: 0, Y: 0}, gridpath.Point{X: 2, Y: 1}, []int{1, 4, 5})
	assert.Equal(t, "S*#\n.*G\n", got)
}

func TestDistanceMapPlain(t *testing.T) {
	grid := testGrid(t)
	distances := []int{0, 1, gridpath.Unvisited, 1, gridpath.Unvisited, gridpath.Unvisited}
	got := NewRenderer(false).DistanceMap(grid, gridpath.Point{X: 2, Y: 1}, distances)
	assert.Equal(t, "----- DIST MAP -----\n00 01 || \n01    FF \n", got)
}

func TestIndices(t *testing.T) {
	assert.Equal(t, "1,5,9,", Indices([]int{1, 5, 9}))
	assert.Equal(t, "", Indices(nil))
}

func TestImage(t *testing.T) {
	grid := testGrid(t)
	pic, err := Image(grid, gridpath.Point{X: 0, Y: 0}, gridpath.Point{X: 2, Y: 1}, []int{1, 4, 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, pic.Bounds().Dx())
	assert.Equal(t, 10, pic.Bounds().Dy())

	assert.Equal(t, startColor, pic.RGBAAt(2, 2))
	assert.Equal(t, pathColor, pic.RGBAAt(7, 2))
	assert.Equal(t, openColor, pic.RGBAAt(5, 0), "path cells keep a margin")
	assert.Equal(t, blockedColor, pic.RGBAAt(12, 2))
	assert.Equal(t, openColor, pic.RGBAAt(2, 7))
	assert.Equal(t, goalColor, pic.RGBAAt(12, 7))

	_, err = Image(grid, gridpath.Point{}, gridpath.Point{}, nil, 2)
	require.Error(t, err)
}
