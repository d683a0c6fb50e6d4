package survival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObstacleMapBorders(t *testing.T) {
	m := NewObstacleMap(20, 20, 60)

	for i := 0; i < 20; i++ {
		assert.True(t, m.IsBlocked(i, 0), "top border col %d", i)
		assert.True(t, m.IsBlocked(i, 19), "bottom border col %d", i)
		assert.True(t, m.IsBlocked(0, i), "left border row %d", i)
		assert.True(t, m.IsBlocked(19, i), "right border row %d", i)
	}
	assert.Equal(t, 18*18, m.OpenTiles())
	assert.False(t, m.IsBlocked(1, 1))
	assert.False(t, m.IsBlocked(18, 18))
	assert.Equal(t, 1200.0, m.WidthPx())
}

func TestObstacleMapOutOfBoundsIsBlocked(t *testing.T) {
	m := NewObstacleMap(10, 10, 60)

	for _, tc := range [][2]int{{-1, 5}, {5, -1}, {10, 5}, {5, 10}, {-100, -100}} {
		assert.True(t, m.IsBlocked(tc[0], tc[1]), "(%d, %d)", tc[0], tc[1])
	}
}

func TestParseLayout(t *testing.T) {
	m, err := ParseLayout([]string{
		".......",
		"..#....",
		"....",
		".......",
		".......",
	}, 60)
	require.NoError(t, err)

	assert.Equal(t, 7, m.Cols())
	assert.Equal(t, 5, m.Rows())
	assert.True(t, m.IsBlocked(0, 0), "border is walled even when the layout leaves it open")
	assert.True(t, m.IsBlocked(2, 1))
	assert.False(t, m.IsBlocked(5, 2), "short rows are padded with open tiles")
	assert.Equal(t, "#######\n#.#...#\n#.....#\n#.....#\n#######", m.String())
}

func TestParseLayoutErrors(t *testing.T) {
	_, err := ParseLayout([]string{"###", "###"}, 60)
	assert.Error(t, err)

	_, err = ParseLayout([]string{"#####", "#.x.#", "#####"}, 60)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected")
}

func TestTileAt(t *testing.T) {
	m := NewObstacleMap(20, 20, 60)

	col, row := m.TileAt(59.9, 60)
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, row)

	col, row = m.TileAt(-0.5, 0)
	assert.Equal(t, -1, col)
	assert.Equal(t, 0, row)
}
