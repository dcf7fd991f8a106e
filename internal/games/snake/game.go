package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/registry"
)

// Default board size in cells.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
)

// Phase is the controller's state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Variant describes one version of the game.
type Variant struct {
	ID           string
	Title        string
	TickInterval time.Duration
	Pausable     bool
	// ScoreFromLength derives the score from body growth instead of a counter.
	ScoreFromLength bool
}

// Built-in variants.
var (
	Classic = Variant{
		ID:           "classic",
		Title:        "Snake",
		TickInterval: 90 * time.Millisecond,
	}
	Pausable = Variant{
		ID:           "pausable",
		Title:        "Snake (Pausable)",
		TickInterval: 100 * time.Millisecond,
		Pausable:     true,
	}
	Growth = Variant{
		ID:              "growth",
		Title:           "Snake (Growth)",
		TickInterval:    80 * time.Millisecond,
		ScoreFromLength: true,
	}
)

// Variants returns all built-in variants.
func Variants() []Variant {
	return []Variant{Classic, Pausable, Growth}
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game is the tick controller. It owns the snake, the food and the
// direction buffer, and advances them one step per Tick.
type Game struct {
	variant    Variant
	rng        *rand.Rand
	grid       Grid
	interval   time.Duration
	highScores core.HighScoreKeeper

	tick      uint64
	snake     *Snake
	food      Cell
	direction Direction // Committed direction
	nextDir   Direction // Buffered direction, committed at the next tick
	points    int
	phase     Phase
	highScore int
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{
		variant:   v,
		interval:  v.TickInterval,
		highScore: -1,
	}
}

// NewClassic creates a classic game.
func NewClassic() *Game {
	return New(Classic)
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the variant this game plays.
func (g *Game) Variant() Variant {
	return g.variant
}

// TickInterval returns the time between ticks.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

// Reset initializes the game from cfg. Zero grid dimensions fall back to the
// defaults; any other dimension that cannot host a snake panics.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	w, h := cfg.GridW, cfg.GridH
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	g.grid = NewGrid(w, h)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.highScores = cfg.HighScores

	g.interval = g.variant.TickInterval
	if cfg.TickInterval > 0 {
		g.interval = cfg.TickInterval
	}

	g.start()
}

// start places a fresh snake and food and begins running.
func (g *Game) start() {
	g.tick = 0
	g.points = 0
	g.snake = NewSnake(g.rng, g.grid)
	g.direction = DirUp
	g.nextDir = DirUp
	g.food = PlaceFood(g.rng, g.grid, g.snake)
	g.phase = PhaseRunning
}

// HandleAction applies one input event. Events that do not fit the current
// phase are ignored.
func (g *Game) HandleAction(a core.Action) {
	if d, ok := directionFor(a); ok {
		g.SetDirection(d)
		return
	}
	switch a {
	case core.ActionPause:
		g.TogglePause()
	case core.ActionRestart:
		g.Restart()
	}
}

// SetDirection buffers d for the next tick. A direct reversal of the
// committed direction is rejected. Reports whether d was buffered.
func (g *Game) SetDirection(d Direction) bool {
	if g.phase != PhaseRunning {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.nextDir = d
	return true
}

// TogglePause switches between running and paused in pausable variants.
func (g *Game) TogglePause() bool {
	if !g.variant.Pausable {
		return false
	}
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// Restart begins a new round. Only valid after game over.
func (g *Game) Restart() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.start()
	return true
}

// Ticking reports whether the tick timer should be running.
func (g *Game) Ticking() bool {
	return g.phase == PhaseRunning
}

// Tick advances the game by one step.
//
// Collision is tested on the positions the snake held when the tick began,
// before the head moves. A head that lands on a body cell is therefore caught
// on the following tick.
func (g *Game) Tick() core.StepResult {
	if g.phase != PhaseRunning {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.direction = g.nextDir

	if g.snake.SelfColliding() {
		g.endGame()
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventGameOver}}
	}

	next := g.grid.Step(g.snake.Head(), g.direction)
	grow := next == g.food
	g.snake.Advance(grow)
	g.snake.MoveHead(next)

	if !grow {
		return core.StepResult{State: g.State()}
	}

	g.points++
	g.food = PlaceFood(g.rng, g.grid, g.snake)
	return core.StepResult{State: g.State(), Events: []core.Event{core.EventAte}}
}

// endGame stops the round and records the score.
func (g *Game) endGame() {
	g.phase = PhaseGameOver
	score := g.Score()
	if g.highScores != nil {
		g.highScore = g.highScores.Submit(score)
		return
	}
	g.highScore = max(g.highScore, score)
}

// Score returns the current score.
func (g *Game) Score() int {
	if g.variant.ScoreFromLength {
		return g.snake.GrowthCount()
	}
	return g.points
}

// HighScore returns the best known score, or -1 when unknown.
func (g *Game) HighScore() int {
	return g.highScore
}

// Grid returns the board geometry.
func (g *Game) Grid() Grid {
	return g.grid
}

// Body returns the snake's cells, head first.
func (g *Game) Body() []Cell {
	return g.snake.Cells()
}

// Head returns the snake's head cell.
func (g *Game) Head() Cell {
	return g.snake.Head()
}

// Food returns the food cell.
func (g *Game) Food() Cell {
	return g.food
}

// Direction returns the committed direction.
func (g *Game) Direction() Direction {
	return g.direction
}

// NextDirection returns the buffered direction.
func (g *Game) NextDirection() Direction {
	return g.nextDir
}

// Phase returns the controller phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// GameOver reports whether the round has ended.
func (g *Game) GameOver() bool {
	return g.phase == PhaseGameOver
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.phase == PhasePaused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.Score(),
		HighScore: g.highScore,
		GameOver:  g.GameOver(),
		Paused:    g.Paused(),
	}
}
