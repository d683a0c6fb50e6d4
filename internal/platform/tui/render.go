package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/currentlycrafting/survival/internal/core"
	"github.com/currentlycrafting/survival/internal/survival"
)

// Glyphs; each map tile is two terminal columns wide.
const (
	tileCols    = 2
	wallGlyph   = '█'
	floorGlyph  = '·'
	playerGlyph = '@'
	enemyGlyph  = 'e'
	bossGlyph   = 'B'
	hudRows     = 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps world positions to screen cells below the HUD, keeping the
// player in the middle.
type viewport struct {
	tile           float64
	offCol, offRow int
}

func newViewport(v survival.View, width, height int) viewport {
	tile := v.Map.TileSize()
	visibleCols := float64(width / tileCols)
	visibleRows := float64(height - hudRows)
	center := v.Player.Add(core.Vec{X: tile / 2, Y: tile / 2})
	off := survival.CameraOffset(center, visibleCols*tile, visibleRows*tile)
	return viewport{
		tile:   tile,
		offCol: int(math.Floor(off.X / tile)),
		offRow: int(math.Floor(off.Y / tile)),
	}
}

// cell returns the screen position of the tile containing pos.
func (vp viewport) cell(pos core.Vec) (x, y int) {
	col := int(math.Floor(pos.X/vp.tile+0.5)) - vp.offCol
	row := int(math.Floor(pos.Y/vp.tile+0.5)) - vp.offRow
	return col * tileCols, row + hudRows
}

// DrawView renders the world, HUD and phase banners into s.
func DrawView(s *core.Screen, v survival.View, fps int) {
	s.Clear()
	if v.Map == nil {
		return
	}
	vp := newViewport(v, s.Width(), s.Height())

	for y := hudRows; y < s.Height(); y++ {
		row := y - hudRows + vp.offRow
		for x := 0; x+tileCols <= s.Width(); x += tileCols {
			col := x/tileCols + vp.offCol
			if col < 0 || row < 0 || col >= v.Map.Cols() || row >= v.Map.Rows() {
				continue
			}
			if v.Map.IsBlocked(col, row) {
				drawTile(s, x, y, wallGlyph, core.ColorGray)
			} else {
				s.SetColored(x, y, floorGlyph, core.ColorGray)
			}
		}
	}

	for _, e := range v.Enemies {
		x, y := vp.cell(e)
		drawTile(s, x, y, enemyGlyph, core.ColorRed)
	}
	for _, b := range v.Bosses {
		x, y := vp.cell(b)
		drawTile(s, x, y, bossGlyph, core.ColorBrightRed)
	}
	x, y := vp.cell(v.Player)
	drawTile(s, x, y, playerGlyph, core.ColorBrightGreen)

	drawHUD(s, v, fps)
	drawBanner(s, v)
}

func drawTile(s *core.Screen, x, y int, r rune, c core.Color) {
	world := core.NewRect(0, hudRows, s.Width(), s.Height()-hudRows)
	for i := 0; i < tileCols; i++ {
		if world.Contains(x+i, y) {
			s.SetColored(x+i, y, r, c)
		}
	}
}

func drawHUD(s *core.Screen, v survival.View, fps int) {
	hud := fmt.Sprintf(" Time %s  Level %d  Longest %s", v.Elapsed, v.Level, v.Longest)
	if v.Battles > 0 {
		hud += fmt.Sprintf("  Bosses %d", v.Battles)
	}
	s.DrawTextColored(0, 0, hud, core.ColorBrightCyan)

	if fps > 0 {
		label := fmt.Sprintf("%d fps ", fps)
		s.DrawTextColored(s.Width()-len(label), 0, label, core.ColorGray)
	}
}

func drawBanner(s *core.Screen, v survival.View) {
	switch {
	case v.Phase == survival.PhaseLevelingUp:
		drawPanel(s, fmt.Sprintf("LEVEL %d", v.Level), core.ColorBrightYellow)
	case v.Phase == survival.PhaseBossAnnounce:
		drawPanel(s, "BOSS BATTLE!", core.ColorOrange)
	case v.Phase == survival.PhaseBossBattle:
		s.DrawTextColored(0, s.Height()-1, " BOSS ", core.ColorOrange)
	case v.Paused:
		drawPanel(s, "PAUSED", core.ColorWhite)
	}
}

// drawPanel draws text in a bordered box above the player's row.
func drawPanel(s *core.Screen, text string, c core.Color) {
	w := len([]rune(text)) + 4
	x := core.Clamp((s.Width()-w)/2, 0, max(s.Width()-w, 0))
	y := core.Clamp(hudRows+(s.Height()-hudRows)/2-4, hudRows, max(s.Height()-3, hudRows))
	r := core.NewRect(x, y, w, 3)

	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, c)
	s.DrawTextColored(x+2, y+1, text, c)
}
