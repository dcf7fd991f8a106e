package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/games/snake"
	"github.com/vovakirdan/lemon-snake/internal/storage"
)

// endingGame ends on its first tick with a fixed score.
type endingGame struct {
	over  bool
	ticks int
}

func (g *endingGame) ID() string                  { return "ending" }
func (g *endingGame) Title() string               { return "Ending" }
func (g *endingGame) Reset(core.RuntimeConfig)    { g.over = false }
func (g *endingGame) Ticking() bool               { return !g.over }
func (g *endingGame) TickInterval() time.Duration { return time.Millisecond }
func (g *endingGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "ending", core.ColorDefault) }
func (g *endingGame) State() core.GameState       { return core.GameState{Score: 3, GameOver: g.over} }

func (g *endingGame) HandleAction(a core.Action) {
	if a == core.ActionRestart && g.over {
		g.over = false
	}
}

func (g *endingGame) Tick() core.StepResult {
	g.ticks++
	g.over = true
	return core.StepResult{State: g.State(), Events: []core.Event{core.EventGameOver}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelTickRearmsWhileRunning(t *testing.T) {
	g := snake.NewClassic()
	m := NewModel(g, core.RuntimeConfig{Seed: 4}, Options{Width: 80, Height: 30})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the timer")
	}

	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd == nil {
		t.Error("running game should re-arm the timer")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected 1", g.Snapshot().Tick)
	}

	// A tick from a stale chain is dropped.
	_, cmd = update(t, m, TickMsg{Gen: 7})
	if cmd != nil || g.Snapshot().Tick != 1 {
		t.Error("stale tick should be ignored")
	}
}

func TestModelPauseStopsTimer(t *testing.T) {
	g := snake.New(snake.Pausable)
	m := NewModel(g, core.RuntimeConfig{Seed: 4}, Options{Width: 80, Height: 30})
	m.Init()

	m, _ = update(t, m, runeKey('p'))
	if !g.Paused() {
		t.Fatal("p should pause")
	}

	// The tick already in flight lands but does not re-arm.
	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd != nil {
		t.Error("paused game should not re-arm the timer")
	}

	m, cmd = update(t, m, runeKey('p'))
	if cmd == nil {
		t.Fatal("resume should start a new timer")
	}
	if m.tickGen != 1 {
		t.Errorf("tickGen = %d, expected 1", m.tickGen)
	}

	// The old chain is dead.
	before := g.Snapshot().Tick
	update(t, m, TickMsg{Gen: 0})
	if g.Snapshot().Tick != before {
		t.Error("old timer chain should be ignored after resume")
	}
}

func TestModelDirectionKeys(t *testing.T) {
	g := snake.NewClassic()
	m := NewModel(g, core.RuntimeConfig{Seed: 9}, Options{Width: 80, Height: 30})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if g.NextDirection() != snake.DirLeft {
		t.Errorf("next direction = %v, expected left", g.NextDirection())
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if g.NextDirection() != snake.DirRight {
		t.Errorf("next direction = %v, expected right (committed is still up)", g.NextDirection())
	}
}

func TestModelSavesRoundOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &endingGame{}
	m := NewModel(g, core.RuntimeConfig{Seed: 1}, Options{Store: store, Width: 40, Height: 10})
	m.Init()

	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd != nil {
		t.Error("timer should stop on game over")
	}
	if !m.GameState().GameOver {
		t.Error("model should observe game over")
	}
	m, _ = update(t, m, TickMsg{Gen: 0})

	scores, err := store.TopScores("ending", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 3 || scores[0].Seed != 1 {
		t.Fatalf("scores = %+v, expected one round of 3", scores)
	}

	// Restart re-arms the timer and allows the next round to be saved.
	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should start a new timer")
	}
	update(t, m, TickMsg{Gen: m.tickGen})

	scores, _ = store.TopScores("ending", 10)
	if len(scores) != 2 {
		t.Errorf("expected 2 rounds after restart, got %d", len(scores))
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&endingGame{}, core.RuntimeConfig{}, Options{Width: 40, Height: 10})
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&endingGame{}, core.RuntimeConfig{}, Options{Width: 120, Height: 10})
	m.Init()

	view := m.View()
	if !strings.Contains(view, "ending") {
		t.Error("view should contain the game screen")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain key help")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := snake.NewClassic()
	m := NewModel(g, core.RuntimeConfig{Seed: 2}, Options{Width: 80, Height: 30})
	m.Init()
	m, _ = update(t, m, TickMsg{Gen: 0})
	before := g.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.Snapshot() != before {
		t.Error("resize should not reset the round")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
