// Package survival implements the simulation engine: the obstacle map, entity
// movement and pursuit AI, collision checks, spawn placement and the
// wave/level director that drives a session from first tick to game over.
package survival

import (
	"fmt"
	"math"
	"strings"
)

// Cell is the content of one map tile.
type Cell uint8

const (
	Open Cell = iota
	Blocked
)

// ObstacleMap is a static grid of open and blocked tiles. Border tiles are
// always blocked. The map is not modified after construction.
type ObstacleMap struct {
	cols, rows int
	tileSize   float64
	cells      []Cell
}

// NewObstacleMap builds a map with border walls and an open interior.
func NewObstacleMap(cols, rows int, tileSize float64) *ObstacleMap {
	m := &ObstacleMap{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		cells:    make([]Cell, cols*rows),
	}
	m.wallBorder()
	return m
}

// ParseLayout builds a map from rows of '#' (blocked) and '.' (open).
// Short rows are padded with open tiles; the border is walled regardless of
// what the layout says.
func ParseLayout(rows []string, tileSize float64) (*ObstacleMap, error) {
	if len(rows) < 3 {
		return nil, fmt.Errorf("survival: layout needs at least 3 rows, got %d", len(rows))
	}
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if cols < 3 {
		return nil, fmt.Errorf("survival: layout needs at least 3 columns, got %d", cols)
	}

	m := &ObstacleMap{
		cols:     cols,
		rows:     len(rows),
		tileSize: tileSize,
		cells:    make([]Cell, cols*len(rows)),
	}
	for r, line := range rows {
		for c, ch := range []byte(line) {
			switch ch {
			case '#':
				m.cells[r*cols+c] = Blocked
			case '.', ' ':
			default:
				return nil, fmt.Errorf("survival: layout row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	m.wallBorder()
	return m, nil
}

func (m *ObstacleMap) wallBorder() {
	for c := 0; c < m.cols; c++ {
		m.cells[c] = Blocked
		m.cells[(m.rows-1)*m.cols+c] = Blocked
	}
	for r := 0; r < m.rows; r++ {
		m.cells[r*m.cols] = Blocked
		m.cells[r*m.cols+m.cols-1] = Blocked
	}
}

// Cols returns the number of tile columns.
func (m *ObstacleMap) Cols() int { return m.cols }

// Rows returns the number of tile rows.
func (m *ObstacleMap) Rows() int { return m.rows }

// TileSize returns the side of one tile in pixels.
func (m *ObstacleMap) TileSize() float64 { return m.tileSize }

// WidthPx returns the map width in pixels.
func (m *ObstacleMap) WidthPx() float64 { return float64(m.cols) * m.tileSize }

// HeightPx returns the map height in pixels.
func (m *ObstacleMap) HeightPx() float64 { return float64(m.rows) * m.tileSize }

// Cell returns the tile at (col, row). Out-of-bounds tiles read as Blocked.
func (m *ObstacleMap) Cell(col, row int) Cell {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return Blocked
	}
	return m.cells[row*m.cols+col]
}

// IsBlocked reports whether the tile at (col, row) cannot be entered.
func (m *ObstacleMap) IsBlocked(col, row int) bool {
	return m.Cell(col, row) == Blocked
}

// TileAt returns the tile containing the pixel (x, y).
func (m *ObstacleMap) TileAt(x, y float64) (col, row int) {
	return int(math.Floor(x / m.tileSize)), int(math.Floor(y / m.tileSize))
}

// OpenTiles counts the open tiles.
func (m *ObstacleMap) OpenTiles() int {
	n := 0
	for _, c := range m.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// String renders the map in layout notation.
func (m *ObstacleMap) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < m.cols; c++ {
			if m.IsBlocked(c, r) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
