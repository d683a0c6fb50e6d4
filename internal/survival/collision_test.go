package survival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/currentlycrafting/survival/internal/core"
)

func TestTileCollides(t *testing.T) {
	m, err := ParseLayout([]string{
		"########",
		"#......#",
		"#..#...#",
		"#......#",
		"#......#",
		"########",
	}, 60)
	require.NoError(t, err)

	tests := []struct {
		name     string
		pos      core.Vec
		expected bool
	}{
		{"aligned in open tile", core.Vec{X: 60, Y: 60}, false},
		{"one pixel into left border", core.Vec{X: 59, Y: 60}, true},
		{"one pixel into top border", core.Vec{X: 60, Y: 59}, true},
		{"flush against right border", core.Vec{X: 360, Y: 60}, false},
		{"one pixel into right border", core.Vec{X: 361, Y: 60}, true},
		{"bottom-right corner enters pillar", core.Vec{X: 121, Y: 61}, true},
		{"flush beside pillar", core.Vec{X: 120, Y: 60}, false},
		{"box straddles pillar corner", core.Vec{X: 179, Y: 179}, true},
		{"just past pillar", core.Vec{X: 240, Y: 180}, false},
		{"outside the map", core.Vec{X: -100, Y: 60}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TileCollides(m, tc.pos, 60))
		})
	}
}

func TestTileCollidesFractional(t *testing.T) {
	m := NewObstacleMap(20, 20, 60)

	tests := []struct {
		name     string
		pos      core.Vec
		expected bool
	}{
		{"half pixel into right border", core.Vec{X: 1080.5, Y: 600}, true},
		{"hair into right border", core.Vec{X: 1080.0001, Y: 600}, true},
		{"half pixel into bottom border", core.Vec{X: 600, Y: 1080.5}, true},
		{"half pixel into left border", core.Vec{X: 59.5, Y: 600}, true},
		{"just short of right border", core.Vec{X: 1079.5, Y: 600}, false},
		{"flush against right border", core.Vec{X: 1080, Y: 600}, false},
		{"diagonal step in the open", core.Vec{X: 600 + 2.8284271247461903, Y: 600 - 2.8284271247461903}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TileCollides(m, tc.pos, 60))

			wall := core.BoxAt(core.Vec{X: 1140, Y: 600}, 60)
			if tc.pos.Y == 600 && tc.pos.X > 1000 {
				assert.Equal(t, tc.expected, Overlaps(core.BoxAt(tc.pos, 60), wall),
					"tile check agrees with the box test against the wall tile")
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := core.BoxAt(core.Vec{X: 100, Y: 100}, 60)

	assert.True(t, Overlaps(a, core.BoxAt(core.Vec{X: 159, Y: 159}, 60)))
	assert.False(t, Overlaps(a, core.BoxAt(core.Vec{X: 160, Y: 100}, 60)), "touching edges do not overlap")
	assert.False(t, Overlaps(a, core.BoxAt(core.Vec{X: 100, Y: 40}, 60)))
	assert.True(t, Overlaps(a, a))
}
