package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('w'), core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.expected {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel("pillars", config.DifficultyNormal, 80, 24)
	if m.layouts[m.cursor].ID != "pillars" {
		t.Fatalf("cursor starts on %q", m.layouts[m.cursor].ID)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil {
		t.Fatal("enter did not exit the menu")
	}

	res := m.Result()
	if res.Quit || res.Layout != "pillars" || res.Difficulty != config.DifficultyHard {
		t.Errorf("Result() = %+v", res)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel("", "", 80, 24)
	next, _ := m.Update(runeKey('q'))
	if res := next.(MenuModel).Result(); !res.Quit {
		t.Errorf("Result() after q = %+v, expected quit", res)
	}
}
