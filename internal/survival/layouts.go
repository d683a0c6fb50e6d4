package survival

import (
	"strings"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/registry"
)

// DefaultLayout is used when the config names neither rows nor a preset.
const DefaultLayout = "arena"

func init() {
	registry.Register("arena", func(cols, rows int) registry.Layout {
		return registry.Layout{Title: "Arena (border walls only)", Rows: generate(cols, rows, nil)}
	})
	registry.Register("pillars", func(cols, rows int) registry.Layout {
		return registry.Layout{Title: "Pillars (single-tile columns)", Rows: generate(cols, rows, func(c, r int) bool {
			return c%4 == 3 && r%4 == 3
		})}
	})
	registry.Register("bunkers", func(cols, rows int) registry.Layout {
		return registry.Layout{Title: "Bunkers (2x2 blocks)", Rows: generate(cols, rows, func(c, r int) bool {
			return c%6 >= 2 && c%6 <= 3 && r%6 >= 2 && r%6 <= 3
		})}
	})
}

// generate builds layout rows with walls wherever blocked returns true. The
// tiles around the center stay open for the player.
func generate(cols, rows int, blocked func(c, r int) bool) []string {
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		var sb strings.Builder
		for c := 0; c < cols; c++ {
			border := c == 0 || r == 0 || c == cols-1 || r == rows-1
			wall := blocked != nil && blocked(c, r) && !nearCenter(c, r, cols, rows)
			if border || wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[r] = sb.String()
	}
	return out
}

func nearCenter(c, r, cols, rows int) bool {
	dc := 2*c + 1 - cols
	dr := 2*r + 1 - rows
	return dc >= -3 && dc <= 3 && dr >= -3 && dr <= 3
}

// BuildMap resolves the map section of a config: explicit layout rows win,
// then the named preset, then the default arena.
func BuildMap(cfg config.MapConfig) (*ObstacleMap, error) {
	if len(cfg.Layout) > 0 {
		return ParseLayout(cfg.Layout, cfg.TileSize)
	}
	name := cfg.Preset
	if name == "" {
		name = DefaultLayout
	}
	l, err := registry.Create(name, cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, err
	}
	return ParseLayout(l.Rows, cfg.TileSize)
}
