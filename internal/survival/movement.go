package survival

import (
	"math"
	"math/rand"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
)

// separationFactor is the share of the neighbor-to-self vector added to a
// candidate position that lands too close to a neighbor.
const separationFactor = 0.5

// Mover advances every entity by one tick.
type Mover struct {
	player config.PlayerConfig
	enemy  config.EnemyConfig
	boss   config.BossConfig
	rng    *rand.Rand
}

// NewMover creates a mover drawing angle jitter from rng.
func NewMover(cfg config.Config, rng *rand.Rand) *Mover {
	return &Mover{
		player: cfg.Player,
		enemy:  cfg.Enemy,
		boss:   cfg.Boss,
		rng:    rng,
	}
}

// Step moves the player, then each enemy, then each boss. It returns true as
// soon as a pursuer overlaps the player; the remaining pursuers do not move.
func (m *Mover) Step(w *World, in core.Intent) (caught bool) {
	m.MovePlayer(w, in)
	for i := range w.Enemies {
		if m.moveEnemy(w, i) {
			return true
		}
	}
	for i := range w.Bosses {
		if m.moveBoss(w, i) {
			return true
		}
	}
	return false
}

// MovePlayer applies the held directions. Diagonal input is rescaled to the
// player's speed; a move that would touch a blocked tile is dropped whole.
func (m *Mover) MovePlayer(w *World, in core.Intent) {
	speed := w.Player.Speed
	var d core.Vec
	if in.Up {
		d.Y -= speed
	}
	if in.Down {
		d.Y += speed
	}
	if in.Left {
		d.X -= speed
	}
	if in.Right {
		d.X += speed
	}
	if d.X == 0 && d.Y == 0 {
		return
	}
	if d.X != 0 && d.Y != 0 {
		d = d.Scale(speed / d.Len())
	}

	next := w.Player.Pos.Add(d)
	if !TileCollides(w.Map, next, w.Player.Size) {
		w.Player.Pos = next
	}
}

func (m *Mover) moveEnemy(w *World, i int) bool {
	e := &w.Enemies[i]
	e.Angle += (m.rng.Float64()*2 - 1) * m.enemy.AngleJitter

	orbit := core.Vec{X: math.Cos(e.Angle), Y: math.Sin(e.Angle)}.Scale(m.enemy.CircleRadius)
	target := w.Player.Pos.Add(orbit)

	if next, ok := approach(*e, target, m.enemy.SlowDown); ok {
		next = separate(next, *e, w.Enemies, i, w.Map.TileSize())
		commit(w.Map, e, next)
	}
	return Overlaps(e.Box(), w.Player.Box())
}

func (m *Mover) moveBoss(w *World, i int) bool {
	b := &w.Bosses[i]

	if next, ok := approach(*b, w.Player.Pos, m.boss.SlowDown); ok {
		next = separate(next, *b, w.Bosses, i, w.Map.TileSize())
		next = separate(next, *b, w.Enemies, -1, w.Map.TileSize())
		commit(w.Map, b, next)
	}
	return Overlaps(b.Box(), w.Player.Box())
}

// approach returns the candidate position one step toward target at
// speed*slowDown. ok is false when the pursuer already sits on the target.
func approach(p Pursuer, target core.Vec, slowDown float64) (core.Vec, bool) {
	delta := target.Sub(p.Pos)
	dist := delta.Len()
	if dist == 0 {
		return p.Pos, false
	}
	return p.Pos.Add(delta.Scale(p.Speed * slowDown / dist)), true
}

// separate nudges next away from every neighbor in others closer than
// tileSize, in list order. skip is the index of self in others, or -1.
func separate(next core.Vec, self Pursuer, others []Pursuer, skip int, tileSize float64) core.Vec {
	for j := range others {
		if j == skip {
			continue
		}
		o := others[j].Pos
		if next.Sub(o).Len() < tileSize {
			next = next.Add(self.Pos.Sub(o).Scale(separationFactor))
		}
	}
	return next
}

func commit(m *ObstacleMap, p *Pursuer, next core.Vec) {
	if !TileCollides(m, next, p.Size) {
		p.Pos = next
	}
}
