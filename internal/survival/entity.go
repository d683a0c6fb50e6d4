package survival

import (
	"time"

	"github.com/currentlycrafting/survival/internal/core"
)

// Kind tags a pursuer with the AI it runs.
type Kind uint8

const (
	KindEnemy Kind = iota // circles the player
	KindBoss              // heads straight for the player
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	if k == KindBoss {
		return "boss"
	}
	return "enemy"
}

// Player is the entity controlled by input.
type Player struct {
	Pos   core.Vec
	Speed float64
	Size  float64
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.BoxAt(p.Pos, p.Size)
}

// Pursuer is an enemy or a boss. Bosses use the same record with the
// boss-only fields filled in.
type Pursuer struct {
	Kind  Kind
	Pos   core.Vec
	Speed float64
	Size  float64
	Angle float64 // radians, drives circling

	// Boss only.
	SummonEvery  time.Duration // 0 disables summoning
	LastSummonAt time.Duration
	Level        int
	Defeated     bool
}

// Box returns the pursuer's bounding box.
func (p Pursuer) Box() core.Box {
	return core.BoxAt(p.Pos, p.Size)
}

// World is the mutable entity set of a session plus its static map.
type World struct {
	Map     *ObstacleMap
	Player  Player
	Enemies []Pursuer
	Bosses  []Pursuer
}

// ClearPursuers removes every enemy and boss.
func (w *World) ClearPursuers() {
	w.Enemies = w.Enemies[:0]
	w.Bosses = w.Bosses[:0]
}

// Occupied reports whether an enemy or boss sits exactly at pos.
func (w *World) Occupied(pos core.Vec) bool {
	for _, e := range w.Enemies {
		if e.Pos == pos {
			return true
		}
	}
	for _, b := range w.Bosses {
		if b.Pos == pos {
			return true
		}
	}
	return false
}

// PlayerStart returns the spawn point of the player: the map center, offset
// by half a tile so the player's box is centered.
func PlayerStart(m *ObstacleMap) core.Vec {
	return core.Vec{
		X: m.WidthPx()/2 - m.TileSize()/2,
		Y: m.HeightPx()/2 - m.TileSize()/2,
	}
}
