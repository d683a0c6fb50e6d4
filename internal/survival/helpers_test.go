package survival

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
)

// recorder collects notifier events as strings.
type recorder struct {
	events []string
}

func (r *recorder) OnLevelUp(level int) { r.events = append(r.events, fmt.Sprintf("level:%d", level)) }
func (r *recorder) OnBossBattleStart()  { r.events = append(r.events, "boss-start") }
func (r *recorder) OnBossBattleEnd()    { r.events = append(r.events, "boss-end") }
func (r *recorder) OnGameOver()         { r.events = append(r.events, "game-over") }
func (r *recorder) OnRestart()          { r.events = append(r.events, "restart") }

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// quietConfig keeps pursuers in place so long runs never end in game over.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Enemy.Speed = 0
	cfg.Boss.Speed = 0
	return cfg
}

func newSession(t *testing.T, cfg config.Config, opts ...Option) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithSeed(42), WithNotifier(rec)}, opts...)
	s, err := NewSession(cfg, opts...)
	require.NoError(t, err)
	return s, rec
}

// stepTo advances s until its tick counter reaches tick.
func stepTo(s *Session, tick uint64, in core.Intent) {
	for s.ticks < tick {
		s.Step(in)
	}
}

// openWorld builds a bordered cols x rows world with the player at the center.
func openWorld(cols, rows int) *World {
	m := NewObstacleMap(cols, rows, 60)
	return &World{
		Map:    m,
		Player: Player{Pos: PlayerStart(m), Speed: 4, Size: 60},
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
