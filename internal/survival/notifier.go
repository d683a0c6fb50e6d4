package survival

import "github.com/charmbracelet/log"

// Notifier receives game-flow events from the director. Implementations must
// not block; the simulation does not depend on what they do.
type Notifier interface {
	OnLevelUp(level int)
	OnBossBattleStart()
	OnBossBattleEnd()
	OnGameOver()
	OnRestart()
}

// NopNotifier ignores every event.
type NopNotifier struct{}

// OnLevelUp does nothing.
func (NopNotifier) OnLevelUp(int) {}

// OnBossBattleStart does nothing.
func (NopNotifier) OnBossBattleStart() {}

// OnBossBattleEnd does nothing.
func (NopNotifier) OnBossBattleEnd() {}

// OnGameOver does nothing.
func (NopNotifier) OnGameOver() {}

// OnRestart does nothing.
func (NopNotifier) OnRestart() {}

// LogNotifier writes every event to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

// OnLevelUp logs the level just reached. The key is not "level", which the
// logger reserves for the record's severity.
func (n LogNotifier) OnLevelUp(level int) { n.Logger.Info("level up", "new_level", level) }

// OnBossBattleStart logs the boss announcement.
func (n LogNotifier) OnBossBattleStart() { n.Logger.Info("boss battle started") }

// OnBossBattleEnd logs the end of a boss battle.
func (n LogNotifier) OnBossBattleEnd() { n.Logger.Info("boss battle ended") }

// OnGameOver logs that the player was caught.
func (n LogNotifier) OnGameOver() { n.Logger.Info("game over") }

// OnRestart logs a new run starting.
func (n LogNotifier) OnRestart() { n.Logger.Info("restart") }

// MultiNotifier fans events out in order.
type MultiNotifier []Notifier

// OnLevelUp forwards the event to every notifier.
func (m MultiNotifier) OnLevelUp(level int) {
	for _, n := range m {
		n.OnLevelUp(level)
	}
}

// OnBossBattleStart forwards the event to every notifier.
func (m MultiNotifier) OnBossBattleStart() {
	for _, n := range m {
		n.OnBossBattleStart()
	}
}

// OnBossBattleEnd forwards the event to every notifier.
func (m MultiNotifier) OnBossBattleEnd() {
	for _, n := range m {
		n.OnBossBattleEnd()
	}
}

// OnGameOver forwards the event to every notifier.
func (m MultiNotifier) OnGameOver() {
	for _, n := range m {
		n.OnGameOver()
	}
}

// OnRestart forwards the event to every notifier.
func (m MultiNotifier) OnRestart() {
	for _, n := range m {
		n.OnRestart()
	}
}
