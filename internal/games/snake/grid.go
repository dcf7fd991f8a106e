package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lemon-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a movement action to its direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Cell is a grid coordinate. Cells are plain values and compare with ==.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a fixed-size toroidal board: leaving one edge re-enters at the opposite one.
type Grid struct {
	Width  int
	Height int
}

// MinWidth and MinHeight bound the playable grid. The height leaves room for
// a head plus two segments below it.
const (
	MinWidth  = 1
	MinHeight = 4
)

// NewGrid returns a grid of the given size. It panics on dimensions that
// cannot host a starting snake.
func NewGrid(width, height int) Grid {
	if width < MinWidth || height < MinHeight {
		panic(fmt.Sprintf("snake: invalid grid %dx%d (need width >= %d, height >= %d)",
			width, height, MinWidth, MinHeight))
	}
	return Grid{Width: width, Height: height}
}

// Step moves c one cell in direction d, wrapping around the edges.
func (g Grid) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{
		X: core.Mod(c.X+dx, g.Width),
		Y: core.Mod(c.Y+dy, g.Height),
	}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// RandomCell draws each axis independently and uniformly.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}
