package survival

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
)

// Session owns one running game: the world, the director and the random
// source everything draws from. It is not safe for concurrent use; hosts
// drive it from a single goroutine.
type Session struct {
	cfg      config.Config
	seed     int64
	rng      *rand.Rand
	logger   *log.Logger
	notifier Notifier

	world    World
	mover    *Mover
	spawner  *Spawner
	director *Director

	ticks  uint64
	paused bool
}

// Option configures a Session.
type Option func(*Session)

// WithSeed sets the RNG seed. Sessions with the same seed, config and input
// sequence produce identical results.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithLogger sets the logger for spawn warnings and diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithNotifier sets the receiver of game-flow events.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// NewSession validates cfg, builds the map and places the player.
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := BuildMap(cfg.Map)
	if err != nil {
		return nil, fmt.Errorf("survival: cannot build map: %w", err)
	}
	if TileCollides(m, PlayerStart(m), m.TileSize()) {
		return nil, fmt.Errorf("survival: player start %v is blocked", PlayerStart(m))
	}

	s := &Session{
		cfg:      cfg,
		logger:   log.New(io.Discard),
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rng = rand.New(rand.NewSource(s.seed))
	s.world = World{Map: m}
	s.mover = NewMover(cfg, s.rng)
	s.spawner = NewSpawner(cfg, s.rng)
	s.director = NewDirector(cfg.Waves, s.spawner, s.notifier, s.logger)
	s.placePlayer()
	return s, nil
}

func (s *Session) placePlayer() {
	s.world.Player = Player{
		Pos:   PlayerStart(s.world.Map),
		Speed: s.cfg.Player.Speed,
		Size:  s.world.Map.TileSize(),
	}
}

// Now returns the simulated time of the current tick.
func (s *Session) Now() time.Duration {
	return time.Duration(s.ticks) * time.Second / time.Duration(s.cfg.Clock.TickRate)
}

// TickRate returns the configured ticks per second.
func (s *Session) TickRate() int {
	return s.cfg.Clock.TickRate
}

// NewClock returns a clock paced for this session's tick rate and catch-up cap.
func (s *Session) NewClock() *Clock {
	return NewClock(s.cfg.Clock.TickRate, s.cfg.Clock.MaxCatchUp)
}

// Step runs one tick: director, then movement, then timed spawns. It does
// nothing while paused or after game over.
func (s *Session) Step(in core.Intent) GameState {
	if s.paused || s.director.state.GameOver {
		return s.director.State()
	}
	s.ticks++
	now := s.Now()

	s.director.Advance(&s.world, now)

	if s.mover.Step(&s.world, in) {
		s.director.GameOver()
		return s.director.State()
	}

	if s.director.SpawningAllowed() {
		if err := s.spawner.TickTimer(&s.world, now); err != nil {
			s.logger.Warn("skipping timed spawn", "error", err)
		}
	}
	if err := s.spawner.TickSummons(&s.world, now); err != nil {
		s.logger.Warn("skipping boss summon", "error", err)
	}
	return s.director.State()
}

// Restart starts a new run on the same map. The longest survival record
// survives the restart.
func (s *Session) Restart() {
	s.ticks = 0
	s.paused = false
	s.director.Restart(&s.world)
	s.placePlayer()
}

// SetPaused freezes or resumes the simulation.
func (s *Session) SetPaused(p bool) {
	s.paused = p
}

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool {
	return s.paused
}

// SetLongest seeds the longest survival record in seconds.
func (s *Session) SetLongest(seconds int) {
	s.director.SetLongest(seconds)
}

// State returns the progression record.
func (s *Session) State() GameState {
	return s.director.State()
}

// Phase returns the current game-flow state.
func (s *Session) Phase() Phase {
	return s.director.Phase()
}
