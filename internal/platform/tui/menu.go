package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
	"github.com/currentlycrafting/survival/internal/registry"
)

var difficulties = []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}

// MenuModel is the Bubble Tea model for the pre-game map and difficulty picker.
type MenuModel struct {
	layouts    []registry.LayoutInfo
	cursor     int
	difficulty int // index into difficulties
	width      int
	height     int
	keys       KeyMap
	quitting   bool
	selected   bool
}

// NewMenuModel creates a menu listing every registered layout. The cursor
// starts on initial when it names a layout.
func NewMenuModel(initial string, difficulty config.DifficultyPreset, width, height int) MenuModel {
	m := MenuModel{
		layouts:    registry.List(),
		difficulty: 1,
		width:      width,
		height:     height,
		keys:       DefaultKeyMap(),
	}
	for i, l := range m.layouts {
		if l.ID == initial {
			m.cursor = i
		}
	}
	for i, d := range difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == " " {
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.layouts)-1 {
			m.cursor++
		}

	case core.ActionLeft:
		if m.difficulty > 0 {
			m.difficulty--
		}

	case core.ActionRight:
		if m.difficulty < len(difficulties)-1 {
			m.difficulty++
		}

	case core.ActionRestart: // enter
		if len(m.layouts) > 0 {
			m.selected = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  S U R V I V A L  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a map", m.width))
	b.WriteString("\n\n")

	for i, l := range m.layouts {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, l.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("< Difficulty: %s >", difficulties[m.difficulty]), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Up/Down: Map  |  Left/Right: Difficulty  |  Enter: Play  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Layout     string
	Difficulty config.DifficultyPreset
	Quit       bool
}

// Result reports the selection after the menu has exited.
func (m MenuModel) Result() MenuResult {
	if !m.selected || len(m.layouts) == 0 {
		return MenuResult{Quit: true}
	}
	return MenuResult{
		Layout:     m.layouts[m.cursor].ID,
		Difficulty: difficulties[m.difficulty],
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(initial string, difficulty config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(initial, difficulty, 80, 24),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}
