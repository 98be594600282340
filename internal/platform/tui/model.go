package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Sound reacts to game events. *audio.Controller satisfies it.
type Sound interface {
	Intensify()
	Calm()
}

// Ledger records finished runs. *storage.Store satisfies it.
type Ledger interface {
	SaveRun(run storage.RunRecord) (string, error)
	TopRuns(gameID string, limit int) ([]storage.RunRecord, error)
}

// Options configures the front end. Sound and Ledger may be nil.
type Options struct {
	Runtime core.RuntimeConfig
	Sound   Sound
	Ledger  Ledger
	Mouse   bool // Follow the mouse with the paddle
}

// topRunsShown is how many ledger entries the game-over footer lists.
const topRunsShown = 3

// Model is the Bubble Tea model for a dodge session.
type Model struct {
	game      *dodge.Game
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	opts      Options
	fixedSeed bool
	input     core.InputFrame
	state     core.GameState
	topRuns   []storage.RunRecord
	recorded  bool // Whether the current game over has been saved
	quitting  bool
}

// NewModel creates a model and starts the first run. A zero seed picks a
// time-based seed for every run.
func NewModel(game *dodge.Game, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		opts:      opts,
		fixedSeed: opts.Runtime.Seed != 0,
		input:     core.NewInputFrame(),
	}
	m.startRun()
	return m
}

// startRun resets the game for a new run.
func (m *Model) startRun() {
	if !m.fixedSeed {
		m.opts.Runtime.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.opts.Runtime)
	m.state = m.game.State()
	m.recorded = false
	m.input.Clear()
	if m.opts.Sound != nil {
		m.opts.Sound.Calm()
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement applies at once so the paddle
// responds between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		if !m.state.Paused {
			m.game.Move(core.DirLeft)
		}
	case core.ActionRight:
		if !m.state.Paused {
			m.game.Move(core.DirRight)
		}
	case core.ActionPause:
		m.input.Set(core.ActionPause)
	case core.ActionRestart:
		if m.state.GameOver {
			m.startRun()
		}
	}
	return m, nil
}

// handleMouse centers the paddle under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse || m.state.Paused {
		return m, nil
	}
	if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
		m.game.PointAt(msg.X)
	}
	return m, nil
}

// handleResize keeps one line below the playfield for the footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventIntensify:
			if m.opts.Sound != nil {
				m.opts.Sound.Intensify()
			}
		case core.EventGameOver:
			m.recordRun()
		}
	}

	return m, tickCmd(m.opts.Runtime.TickInterval())
}

// recordRun saves the finished run once and refreshes the best runs.
// Ledger failures are ignored; the game continues regardless.
func (m *Model) recordRun() {
	if m.recorded || m.opts.Ledger == nil {
		return
	}
	m.recorded = true

	p := m.game.Session().Progress()
	//nolint:errcheck // Best-effort save
	m.opts.Ledger.SaveRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Score:     m.state.Score,
		Ticks:     p.Ticks,
		Duration:  p.Elapsed,
		PeakSpeed: p.BlockSpeed,
	})
	if runs, err := m.opts.Ledger.TopRuns(m.game.ID(), topRunsShown); err == nil {
		m.topRuns = runs
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer shows the best runs after a game over and key help otherwise.
func (m Model) footer() string {
	if m.state.GameOver && len(m.topRuns) > 0 {
		parts := make([]string, len(m.topRuns))
		for i, r := range m.topRuns {
			parts[i] = fmt.Sprintf("%d. %d (%s)", i+1, r.Score, r.Duration.Round(time.Second))
		}
		return footerStyle.Render("Best runs: " + strings.Join(parts, "  "))
	}
	return m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *dodge.Game, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(NewModel(game, opts), programOpts...)
	_, err := p.Run()
	return err
}
