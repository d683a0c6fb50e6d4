package survival

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
)

// ErrNoSpawnTile is returned when rejection sampling runs out of attempts
// without finding a tile that satisfies every spawn constraint.
var ErrNoSpawnTile = errors.New("survival: no valid spawn tile")

// Spawner places new pursuers and owns the ordinary spawn timer.
type Spawner struct {
	cfg   config.SpawnConfig
	enemy config.EnemyConfig
	boss  config.BossConfig
	rng   *rand.Rand

	lastSpawnAt time.Duration
	primed      bool // false until the first timed spawn
}

// NewSpawner creates a spawner drawing tiles from rng.
func NewSpawner(cfg config.Config, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:   cfg.Spawn,
		enemy: cfg.Enemy,
		boss:  cfg.Boss,
		rng:   rng,
	}
}

// PickTile draws random interior tiles until one is open, not exactly
// occupied by another pursuer, and at least SafeDistance tiles from the
// player on both axes.
func (s *Spawner) PickTile(w *World) (core.Vec, error) {
	m := w.Map
	innerCols, innerRows := m.Cols()-2, m.Rows()-2
	if innerCols < 1 || innerRows < 1 {
		return core.Vec{}, fmt.Errorf("%w: map has no interior", ErrNoSpawnTile)
	}

	tile := m.TileSize()
	safe := float64(s.cfg.SafeDistance) * tile
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		col := 1 + s.rng.Intn(innerCols)
		row := 1 + s.rng.Intn(innerRows)
		if m.IsBlocked(col, row) {
			continue
		}
		pos := core.Vec{X: float64(col) * tile, Y: float64(row) * tile}
		if w.Occupied(pos) {
			continue
		}
		if math.Abs(w.Player.Pos.X-pos.X) < safe || math.Abs(w.Player.Pos.Y-pos.Y) < safe {
			continue
		}
		return pos, nil
	}
	return core.Vec{}, fmt.Errorf("%w after %d attempts (safe distance %d tiles)",
		ErrNoSpawnTile, s.cfg.MaxAttempts, s.cfg.SafeDistance)
}

// SpawnEnemy adds one circling enemy.
func (s *Spawner) SpawnEnemy(w *World) error {
	pos, err := s.PickTile(w)
	if err != nil {
		return err
	}
	w.Enemies = append(w.Enemies, Pursuer{
		Kind:  KindEnemy,
		Pos:   pos,
		Speed: s.enemy.Speed,
		Size:  w.Map.TileSize(),
		Angle: s.rng.Float64() * 2 * math.Pi,
	})
	return nil
}

// SpawnBoss adds one boss of the given escalation level. now starts its
// summon timer.
func (s *Spawner) SpawnBoss(w *World, level int, now time.Duration) error {
	pos, err := s.PickTile(w)
	if err != nil {
		return err
	}
	w.Bosses = append(w.Bosses, Pursuer{
		Kind:         KindBoss,
		Pos:          pos,
		Speed:        s.boss.Speed,
		Size:         w.Map.TileSize(),
		Angle:        s.rng.Float64() * 2 * math.Pi,
		SummonEvery:  s.boss.SummonEvery,
		LastSummonAt: now,
		Level:        level,
	})
	return nil
}

// Due reports whether the ordinary spawn timer has fired. The first check
// after a reset is always due.
func (s *Spawner) Due(now time.Duration) bool {
	return !s.primed || now-s.lastSpawnAt >= s.cfg.Interval
}

// MarkSpawned restarts the ordinary spawn timer at now.
func (s *Spawner) MarkSpawned(now time.Duration) {
	s.lastSpawnAt = now
	s.primed = true
}

// Reset forgets the spawn timer so the next check is due immediately.
func (s *Spawner) Reset() {
	s.lastSpawnAt = 0
	s.primed = false
}

// TickTimer runs the ordinary timed spawn. The timer restarts even when
// placement fails so a crowded map is not resampled every tick.
func (s *Spawner) TickTimer(w *World, now time.Duration) error {
	if !s.Due(now) {
		return nil
	}
	s.MarkSpawned(now)
	return s.SpawnEnemy(w)
}

// TickSummons lets every boss with a due summon timer add one enemy.
func (s *Spawner) TickSummons(w *World, now time.Duration) error {
	var errs []error
	for i := range w.Bosses {
		b := &w.Bosses[i]
		if b.SummonEvery <= 0 || now-b.LastSummonAt < b.SummonEvery {
			continue
		}
		b.LastSummonAt = now
		if err := s.SpawnEnemy(w); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
