package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestRandomIsSeeded(t *testing.T) {
	a, err := Random(25, 10, DefaultDensity, 99)
	require.NoError(t, err)
	b, err := Random(25, 10, DefaultDensity, 99)
	require.NoError(t, err)
	assert.Equal(t, a.Grid.Cells(), b.Grid.Cells())
	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.Goal, b.Goal)
	assert.Equal(t, int64(99), a.Seed)
}

func TestRandomEndpointsArePassable(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m, err := Random(7, 5, 0, seed)
		require.NoError(t, err)
		assert.True(t, m.Grid.Passable(m.Start))
		assert.True(t, m.Grid.Passable(m.Goal))
	}
}

func TestRandomDensityExtremes(t *testing.T) {
	m, err := Random(6, 6, 1, 5)
	require.NoError(t, err)
	for _, open := range m.Grid.Cells() {
		require.True(t, open)
	}
}

func TestRandomErrors(t *testing.T) {
	_, err := Random(0, 4, DefaultDensity, 1)
	require.ErrorIs(t, err, gridpath.ErrInvalidDimensions)
	_, err = Random(4, 4, 1.5, 1)
	require.Error(t, err)
}

func TestDemo2020(t *testing.T) {
	m := Demo2020()
	assert.Equal(t, 20, m.Grid.Width())
	assert.Equal(t, 20, m.Grid.Height())
	assert.True(t, m.Grid.Passable(m.Start))
	assert.True(t, m.Grid.Passable(m.Goal))
	assert.False(t, m.Grid.Passable(gridpath.Point{X: 0, Y: 7}))
	assert.False(t, m.Grid.Passable(gridpath.Point{X: 9, Y: 19}))
}
