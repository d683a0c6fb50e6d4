package survival

import "github.com/currentlycrafting/survival/internal/core"

// TileCollides reports whether a size x size box at pos touches a blocked
// tile. All four corners are tested; one blocked corner rejects the move.
func TileCollides(m *ObstacleMap, pos core.Vec, size float64) bool {
	for _, c := range core.BoxAt(pos, size).Corners() {
		col, row := m.TileAt(c.X, c.Y)
		if m.IsBlocked(col, row) {
			return true
		}
	}
	return false
}

// Overlaps is the entity-entity test: half-open bounding boxes intersect.
func Overlaps(a, b core.Box) bool {
	return a.Intersects(b)
}
