package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/currentlycrafting/survival/internal/core"
	"github.com/currentlycrafting/survival/internal/storage"
	"github.com/currentlycrafting/survival/internal/survival"
)

// holdWindow is how long a direction stays pressed after its last key
// event. Terminals report key repeats but no releases.
const holdWindow = 150 * time.Millisecond

// Options describes the run being hosted. Seed, Layout and Difficulty are
// recorded with each finished run.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Seed       int64
	Layout     string
	Difficulty string
	ShowFPS    bool
}

// Model is the Bubble Tea model for a survival session.
type Model struct {
	session *survival.Session
	clock   *survival.Clock
	input   *core.IntentFlags
	held    map[core.Action]time.Time
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	board   table.Model
	opts    Options
	now     func() time.Time

	width, height int
	quitting      bool
	runSaved      bool // whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model driving s.
func NewModel(s *survival.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		session: s,
		clock:   s.NewClock(),
		input:   &core.IntentFlags{},
		held:    make(map[core.Action]time.Time),
		screen:  core.NewScreen(80, 23),
		keys:    DefaultKeyMap(),
		help:    h,
		opts:    opts,
		now:     time.Now,
		width:   80,
		height:  24,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action.IsDirection():
		m.input.Press(action)
		m.held[action] = m.now().Add(holdWindow)

	case action == core.ActionPause:
		if m.session.State().GameOver {
			break
		}
		paused := !m.session.Paused()
		m.session.SetPaused(paused)
		m.clock.Reset()
		m.releaseAll()

	case action == core.ActionRestart:
		if m.session.State().GameOver {
			m.session.Restart()
			m.clock.Reset()
			m.releaseAll()
			m.runSaved = false
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1)) // last row is the help bar
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired keys, runs the due simulation steps and
// records the run once the player is caught.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for a, until := range m.held {
		if !now.Before(until) {
			m.input.Release(a)
			delete(m.held, a)
		}
	}

	steps := m.clock.Poll(now)
	in := m.input.Snapshot()
	for i := 0; i < steps; i++ {
		if m.session.Step(in).GameOver {
			break
		}
	}

	if st := m.session.State(); st.GameOver && !m.runSaved {
		m.saveRun(st)
		m.runSaved = true
	}

	return m, tickCmd(m.session.TickRate())
}

// saveRun records the finished run and refreshes the leaderboard.
func (m *Model) saveRun(st survival.GameState) {
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Seed:        m.opts.Seed,
		Layout:      m.opts.Layout,
		Difficulty:  m.opts.Difficulty,
		Level:       st.Level,
		Seconds:     st.ElapsedSeconds,
		BossBattles: st.BossBattleCount,
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save run", "error", err)
		return
	}
	runs, err := m.opts.Store.TopRuns(maxRuns)
	if err != nil {
		m.opts.Logger.Warn("cannot load leaderboard", "error", err)
		return
	}
	m.board = newLeaderboard(runs)
}

func (m *Model) releaseAll() {
	m.input.Clear()
	clear(m.held)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.session.View()
	if v.Phase == survival.PhaseGameOver {
		return gameOverView(v, m.board, m.help.View(m.keys), m.width, m.height)
	}

	fps := 0
	if m.opts.ShowFPS {
		fps = m.clock.FPS()
	}
	DrawView(m.screen, v, fps)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for s.
func Run(s *survival.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(s, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
