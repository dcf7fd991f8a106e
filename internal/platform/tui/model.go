package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lemon-snake/internal/audio"
	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/games/snake"
	"github.com/vovakirdan/lemon-snake/internal/registry"
	"github.com/vovakirdan/lemon-snake/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Options carries the optional collaborators of a game session.
// Nil Store or Sound disables score history or sound.
type Options struct {
	Store  *storage.Store
	Sound  *audio.SoundManager
	Width  int
	Height int
}

// Model is the Bubble Tea model for running a snake game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.SoundManager
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	gameState  core.GameState
	tickGen    int  // Current timer chain, see TickMsg
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Width, max(opts.Height-helpHeight, 0)),
		store:  opts.Store,
		sound:  opts.Sound,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// The game is a pointer, so the reset survives the value receiver.
	m.game.Reset(m.config)
	return tickCmd(m.game.TickInterval(), m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Actions reach the game immediately;
// direction changes are buffered by the game until its next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.ActionFor(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	wasOver := m.gameState.GameOver
	wasTicking := m.game.Ticking()
	m.game.HandleAction(action)
	m.gameState = m.game.State()

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Resume or restart: start a fresh timer chain.
	if !wasTicking && m.game.Ticking() {
		m.tickGen++
		return m, tickCmd(m.game.TickInterval(), m.tickGen)
	}
	return m, nil
}

// handleResize processes window resize events. The round keeps going; the
// game redraws itself into the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen {
		return m, nil
	}

	result := m.game.Tick()
	m.gameState = result.State
	if m.sound != nil {
		m.sound.PlayEvents(result.Events)
	}

	if result.Has(core.EventGameOver) {
		m.saveRound()
	}

	if !m.game.Ticking() {
		return m, nil
	}
	return m, tickCmd(m.game.TickInterval(), m.tickGen)
}

// saveRound appends the finished round to the score history (once).
func (m *Model) saveRound() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if sg, ok := m.game.(interface{ Snapshot() snake.Snapshot }); ok {
		snap := sg.Snapshot()
		entry.Length = snap.SnakeLen
		entry.Ticks = snap.Tick
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(entry)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// GameState returns the last state observed from the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
