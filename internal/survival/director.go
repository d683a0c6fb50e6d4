package survival

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/currentlycrafting/survival/internal/config"
)

// Phase is the game-flow state shown to the renderer.
type Phase uint8

const (
	PhaseNormal Phase = iota
	PhaseLevelingUp
	PhaseBossAnnounce
	PhaseBossBattle
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseLevelingUp:
		return "leveling-up"
	case PhaseBossAnnounce:
		return "boss-announce"
	case PhaseBossBattle:
		return "boss-battle"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState is the per-session progression record.
type GameState struct {
	Level                  int
	ElapsedSeconds         int
	GameOver               bool
	BossBattleActive       bool
	BossBattleCount        int
	LongestSurvivalSeconds int
}

// deadline is a banner expiry in simulated time.
type deadline struct {
	at     time.Duration
	active bool
}

func (d *deadline) arm(at time.Duration) {
	d.at = at
	d.active = true
}

func (d *deadline) due(now time.Duration) bool {
	return d.active && now >= d.at
}

// Director runs the level and boss-battle state machine. All transitions
// happen inside Advance, GameOver and Restart.
type Director struct {
	waves    config.WavesConfig
	spawner  *Spawner
	notifier Notifier
	logger   *log.Logger

	state         GameState
	bossWaveCount int

	levelBanner     deadline
	bossBanner      deadline
	bossBattleStart time.Duration
	levelMarks      int64 // level-up boundaries already consumed
}

// NewDirector creates a director at the configured start level.
func NewDirector(waves config.WavesConfig, spawner *Spawner, notifier Notifier, logger *log.Logger) *Director {
	d := &Director{
		waves:    waves,
		spawner:  spawner,
		notifier: notifier,
		logger:   logger,
	}
	d.reset(0)
	return d
}

func (d *Director) reset(longest int) {
	d.state = GameState{
		Level:                  d.waves.StartLevel,
		LongestSurvivalSeconds: longest,
	}
	d.bossWaveCount = 1
	d.levelBanner = deadline{}
	d.bossBanner = deadline{}
	d.bossBattleStart = 0
	d.levelMarks = 0
}

// State returns a copy of the progression record.
func (d *Director) State() GameState {
	return d.state
}

// Phase derives the current game-flow state. Banners take precedence over
// the battle they announce.
func (d *Director) Phase() Phase {
	switch {
	case d.state.GameOver:
		return PhaseGameOver
	case d.bossBanner.active:
		return PhaseBossAnnounce
	case d.levelBanner.active:
		return PhaseLevelingUp
	case d.state.BossBattleActive:
		return PhaseBossBattle
	default:
		return PhaseNormal
	}
}

// SpawningAllowed reports whether the ordinary spawn timer may run.
func (d *Director) SpawningAllowed() bool {
	return d.Phase() == PhaseNormal
}

// Advance runs the state machine for the tick at simulated time now.
func (d *Director) Advance(w *World, now time.Duration) {
	if d.state.GameOver {
		return
	}
	d.state.ElapsedSeconds = int(now / time.Second)

	if d.levelBanner.due(now) {
		d.levelBanner.active = false
		n := d.state.Level * d.waves.EnemiesPerLevel
		d.spawnEnemies(w, n, "level wave")
		d.spawner.MarkSpawned(now)
	}
	if d.bossBanner.due(now) {
		d.bossBanner.active = false
		d.spawnBossWave(w, now)
	}
	if d.state.BossBattleActive && now-d.bossBattleStart >= d.waves.BossBattle {
		d.endBossBattle(w, now)
	}

	// Level-up is evaluated before the boss trigger on the same snapshot.
	if d.levelUpDue(now) {
		d.levelUp(w, now)
	}
	if d.bossBattleDue() {
		d.startBossBattle(now)
	}
}

// levelUpDue is true on the first tick of each level_up_every boundary while
// no boss battle runs. A boundary that passes during a boss battle is skipped.
func (d *Director) levelUpDue(now time.Duration) bool {
	if now <= 0 || d.state.BossBattleActive || d.levelBanner.active {
		return false
	}
	mark := int64(now / d.waves.LevelUpEvery)
	if mark <= d.levelMarks {
		return false
	}
	return now-time.Duration(mark)*d.waves.LevelUpEvery < time.Second
}

func (d *Director) levelUp(w *World, now time.Duration) {
	d.levelMarks = int64(now / d.waves.LevelUpEvery)
	d.state.Level++
	w.ClearPursuers()
	d.levelBanner.arm(now + d.waves.LevelBanner)
	d.notifier.OnLevelUp(d.state.Level)
}

func (d *Director) bossBattleDue() bool {
	return !d.state.BossBattleActive &&
		d.state.Level > 0 &&
		d.state.Level%d.waves.BossEvery == 0
}

func (d *Director) startBossBattle(now time.Duration) {
	d.state.BossBattleActive = true
	d.bossBattleStart = now
	d.bossBanner.arm(now + d.waves.BossBanner)
	d.notifier.OnBossBattleStart()
}

// spawnBossWave places the lead boss, the escalating enemy escort and one
// extra boss per previous boss battle.
func (d *Director) spawnBossWave(w *World, now time.Duration) {
	level := d.state.BossBattleCount + 1
	if err := d.spawner.SpawnBoss(w, level, now); err != nil {
		d.logger.Warn("skipping boss spawn", "error", err)
	}
	d.spawnEnemies(w, d.bossWaveCount*d.waves.BossWaveMultiplier, "boss escort")
	d.bossWaveCount++
	for i := 0; i < d.state.BossBattleCount; i++ {
		if err := d.spawner.SpawnBoss(w, level, now); err != nil {
			d.logger.Warn("skipping extra boss spawn", "error", err)
		}
	}
	d.state.BossBattleCount++
	d.logger.Debug("boss wave spawned", "bosses", len(w.Bosses), "enemies", len(w.Enemies), "battle", d.state.BossBattleCount)
}

func (d *Director) endBossBattle(w *World, now time.Duration) {
	for i := range w.Bosses {
		w.Bosses[i].Defeated = true
	}
	d.logger.Debug("boss battle resolved", "defeated", len(w.Bosses), "next_level", d.state.Level+1)

	d.bossBanner.active = false
	d.state.BossBattleActive = false
	d.state.Level++
	w.ClearPursuers()
	d.spawner.MarkSpawned(now)
	d.notifier.OnBossBattleEnd()
}

func (d *Director) spawnEnemies(w *World, n int, reason string) {
	spawned := 0
	for i := 0; i < n; i++ {
		if err := d.spawner.SpawnEnemy(w); err != nil {
			d.logger.Warn("skipping enemy spawn", "reason", reason, "error", err)
			continue
		}
		spawned++
	}
	d.logger.Debug("wave spawned", "reason", reason, "requested", n, "spawned", spawned)
}

// GameOver freezes progression and updates the longest survival record.
func (d *Director) GameOver() {
	if d.state.GameOver {
		return
	}
	d.state.GameOver = true
	if d.state.ElapsedSeconds > d.state.LongestSurvivalSeconds {
		d.state.LongestSurvivalSeconds = d.state.ElapsedSeconds
	}
	d.notifier.OnGameOver()
}

// Restart returns to the start level with empty entity lists. The longest
// survival record is kept.
func (d *Director) Restart(w *World) {
	d.reset(d.state.LongestSurvivalSeconds)
	w.ClearPursuers()
	d.spawner.Reset()
	d.notifier.OnRestart()
}

// SetLongest seeds the longest survival record.
func (d *Director) SetLongest(seconds int) {
	d.state.LongestSurvivalSeconds = max(seconds, 0)
}
