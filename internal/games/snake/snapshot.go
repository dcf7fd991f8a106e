package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Variant   string
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	Head      Cell
	Dir       Direction
	NextDir   Direction
	Food      Cell
	Phase     Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant:   g.variant.ID,
		Tick:      g.tick,
		Score:     g.Score(),
		HighScore: g.highScore,
		SnakeLen:  g.snake.Len(),
		Head:      g.snake.Head(),
		Dir:       g.direction,
		NextDir:   g.nextDir,
		Food:      g.food,
		Phase:     g.phase,
	}
}

// String renders the snapshot as "key: value" lines.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "variant:    %s\n", s.Variant)
	fmt.Fprintf(&b, "tick:       %d\n", s.Tick)
	fmt.Fprintf(&b, "phase:      %s\n", s.Phase)
	fmt.Fprintf(&b, "score:      %d\n", s.Score)
	fmt.Fprintf(&b, "high score: %d\n", s.HighScore)
	fmt.Fprintf(&b, "length:     %d\n", s.SnakeLen)
	fmt.Fprintf(&b, "head:       %s\n", s.Head)
	fmt.Fprintf(&b, "direction:  %s\n", s.Dir)
	fmt.Fprintf(&b, "food:       %s\n", s.Food)
	return b.String()
}

// Board draws the grid as text: 'O' head, 'o' body, '*' food, '.' empty.
func (g *Game) Board() string {
	rows := make([][]byte, g.grid.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", g.grid.Width))
	}
	if g.grid.Contains(g.food) {
		rows[g.food.Y][g.food.X] = '*'
	}
	for i, c := range g.snake.Cells() {
		if i == 0 {
			rows[c.Y][c.X] = 'O'
		} else if rows[c.Y][c.X] != 'O' {
			rows[c.Y][c.X] = 'o'
		}
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}
