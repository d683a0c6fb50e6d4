package survival

import "github.com/currentlycrafting/survival/internal/core"

// View is the read-only picture of a session handed to renderers.
type View struct {
	Map      *ObstacleMap
	Player   core.Vec
	Enemies  []core.Vec
	Bosses   []core.Vec
	Phase    Phase
	Level    int
	Elapsed  string // m:ss
	Longest  string // m:ss
	Battles  int
	Paused   bool
	TickRate int
}

// View copies out the positions and state a renderer needs.
func (s *Session) View() View {
	st := s.director.State()
	return View{
		Map:      s.world.Map,
		Player:   s.world.Player.Pos,
		Enemies:  positions(s.world.Enemies),
		Bosses:   positions(s.world.Bosses),
		Phase:    s.director.Phase(),
		Level:    st.Level,
		Elapsed:  FormatClock(st.ElapsedSeconds),
		Longest:  FormatClock(st.LongestSurvivalSeconds),
		Battles:  st.BossBattleCount,
		Paused:   s.paused,
		TickRate: s.cfg.Clock.TickRate,
	}
}

func positions(ps []Pursuer) []core.Vec {
	out := make([]core.Vec, len(ps))
	for i, p := range ps {
		out[i] = p.Pos
	}
	return out
}

// Snapshot captures deterministic state for testing and run reports.
type Snapshot struct {
	Tick    uint64
	State   GameState
	Phase   Phase
	Player  core.Vec
	Enemies []core.Vec
	Bosses  []core.Vec
}

// Snapshot returns the current deterministic state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.ticks,
		State:   s.director.State(),
		Phase:   s.director.Phase(),
		Player:  s.world.Player.Pos,
		Enemies: positions(s.world.Enemies),
		Bosses:  positions(s.world.Bosses),
	}
}
