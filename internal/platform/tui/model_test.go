package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
	"github.com/currentlycrafting/survival/internal/storage"
	"github.com/currentlycrafting/survival/internal/survival"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Enemy.Speed = 0
	cfg.Boss.Speed = 0
	s, err := survival.NewSession(cfg, survival.WithSeed(3))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return NewModel(s, Options{Store: store, Seed: 3, Layout: "arena", Difficulty: "normal"})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDirectionKeysHoldThenRelease(t *testing.T) {
	m := newTestModel(t, nil)
	t0 := time.Unix(1_700_000_000, 0)
	m.now = func() time.Time { return t0 }

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)

	if got := m.input.Snapshot(); got != (core.Intent{Up: true, Right: true}) {
		t.Fatalf("intent after key presses = %+v", got)
	}

	next, _ = m.Update(TickMsg(t0.Add(holdWindow / 2)))
	m = next.(Model)
	if !m.input.Snapshot().Right {
		t.Error("direction released before the hold window passed")
	}

	next, _ = m.Update(TickMsg(t0.Add(holdWindow)))
	m = next.(Model)
	if m.input.Snapshot().Any() {
		t.Errorf("directions still held after the hold window: %+v", m.input.Snapshot())
	}
}

func TestTicksAdvanceTheSession(t *testing.T) {
	m := newTestModel(t, nil)
	t0 := time.Unix(1_700_000_000, 0)

	next, cmd := m.Update(TickMsg(t0))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	next, _ = m.Update(TickMsg(t0.Add(50 * time.Millisecond)))
	m = next.(Model)

	if tick := m.session.Snapshot().Tick; tick != 3 {
		t.Errorf("session tick = %d, expected 3", tick)
	}
}

func TestPauseKey(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	if !m.session.Paused() {
		t.Fatal("p did not pause the session")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view has no banner")
	}

	next, _ = m.Update(runeKey('p'))
	m = next.(Model)
	if m.session.Paused() {
		t.Error("second p did not resume the session")
	}
}

func TestRestartIgnoredWhileAlive(t *testing.T) {
	m := newTestModel(t, nil)
	t0 := time.Unix(1_700_000_000, 0)
	m.Update(TickMsg(t0))
	m.Update(TickMsg(t0.Add(100 * time.Millisecond)))
	before := m.session.Snapshot().Tick

	next, _ := m.Update(runeKey('r'))
	m = next.(Model)
	if m.session.Snapshot().Tick != before {
		t.Error("restart reset a running session")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil || !m.quitting {
		t.Fatal("q did not quit")
	}
	if m.View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestSaveRunFillsLeaderboard(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m.saveRun(survival.GameState{Level: 3, ElapsedSeconds: 250, BossBattleCount: 0})
	m.saveRun(survival.GameState{Level: 1, ElapsedSeconds: 40})

	rows := m.board.Rows()
	if len(rows) != 2 {
		t.Fatalf("leaderboard rows = %d, expected 2", len(rows))
	}
	if rows[0][1] != "4:10" || rows[0][4] != "arena" {
		t.Errorf("top row = %v", rows[0])
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 2 || runs[0].Seed != 3 || runs[0].Difficulty != "normal" {
		t.Errorf("stored runs = %+v", runs)
	}
}

func TestResize(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
