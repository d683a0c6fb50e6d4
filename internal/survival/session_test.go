package survival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
)

// catchPlayer drops a stationary enemy onto the player and runs one tick.
func catchPlayer(s *Session) GameState {
	s.world.Enemies = append(s.world.Enemies, Pursuer{
		Kind: KindEnemy,
		Pos:  s.world.Player.Pos,
		Size: s.world.Map.TileSize(),
	})
	return s.Step(core.Intent{})
}

func TestGameOverFreezesSession(t *testing.T) {
	s, rec := newSession(t, quietConfig())
	stepTo(s, 120, core.Intent{})

	st := catchPlayer(s)
	require.True(t, st.GameOver)
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, 1, rec.count("game-over"))

	frozen := s.Snapshot()
	for i := 0; i < 100; i++ {
		s.Step(core.Intent{Right: true})
	}
	assert.Equal(t, frozen, s.Snapshot())
}

func TestRestartKeepsLongestRecord(t *testing.T) {
	s, rec := newSession(t, quietConfig())
	s.SetLongest(45)

	stepTo(s, 30*60, core.Intent{})
	st := catchPlayer(s)
	require.True(t, st.GameOver)
	assert.Equal(t, 30, st.ElapsedSeconds)
	assert.Equal(t, 45, st.LongestSurvivalSeconds)

	s.Restart()
	st = s.State()
	assert.False(t, st.GameOver)
	assert.Equal(t, 1, st.Level)
	assert.Zero(t, st.ElapsedSeconds)
	assert.Zero(t, st.BossBattleCount)
	assert.Equal(t, 45, st.LongestSurvivalSeconds)
	assert.Zero(t, s.Now())
	assert.Empty(t, s.world.Enemies)
	assert.Equal(t, PlayerStart(s.world.Map), s.world.Player.Pos)
	assert.Equal(t, 1, rec.count("restart"))

	stepTo(s, 90*60, core.Intent{})
	st = catchPlayer(s)
	require.True(t, st.GameOver)
	assert.Equal(t, 90, st.LongestSurvivalSeconds)
	assert.Equal(t, "1:30", s.View().Longest)
}

func TestPauseStopsTheClock(t *testing.T) {
	s, _ := newSession(t, quietConfig())
	stepTo(s, 10, core.Intent{})

	s.SetPaused(true)
	before := s.Snapshot()
	for i := 0; i < 50; i++ {
		s.Step(core.Intent{Left: true})
	}
	assert.Equal(t, before, s.Snapshot())
	assert.True(t, s.View().Paused)

	s.SetPaused(false)
	s.Step(core.Intent{})
	assert.Equal(t, uint64(11), s.Snapshot().Tick)
}

func TestSessionsAreDeterministic(t *testing.T) {
	run := func() Snapshot {
		s, _ := newSession(t, config.DefaultConfig(), WithSeed(7))
		intents := allIntents()
		for i := 0; i < 2000; i++ {
			s.Step(intents[(i/30)%len(intents)])
		}
		return s.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestNewSessionErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Clock.TickRate = 0
	_, err := NewSession(cfg)
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.Map.Preset = "nope"
	_, err = NewSession(cfg)
	assert.ErrorContains(t, err, "cannot build map")

	cfg = config.DefaultConfig()
	cfg.Map.Layout = []string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	}
	_, err = NewSession(cfg)
	assert.ErrorContains(t, err, "player start")
}

func TestSessionView(t *testing.T) {
	s, _ := newSession(t, quietConfig())
	s.SetLongest(125)
	stepTo(s, 61*60, core.Intent{})

	v := s.View()
	assert.Equal(t, "1:01", v.Elapsed)
	assert.Equal(t, "2:05", v.Longest)
	assert.Equal(t, 1, v.Level)
	assert.Equal(t, 60, v.TickRate)
	assert.Len(t, v.Enemies, len(s.world.Enemies))
	assert.Equal(t, s.world.Player.Pos, v.Player)
}
