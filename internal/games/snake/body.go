package snake

import "math/rand"

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 3

// Snake is an ordered run of cells with the head first.
//
// Cells are kept tail-first so the head sits at the end of the slice: moving
// pushes at the end and drops from the front, both O(1) amortized.
type Snake struct {
	cells []Cell // cells[0] is the tail, cells[len-1] the head
}

// NewSnake places a head at a random cell with room for two segments directly below it.
func NewSnake(rng *rand.Rand, grid Grid) *Snake {
	x := rng.Intn(grid.Width)
	y := rng.Intn(grid.Height - InitialLength)
	return NewSnakeFrom(
		Cell{X: x, Y: y},
		Cell{X: x, Y: y + 1},
		Cell{X: x, Y: y + 2},
	)
}

// NewSnakeFrom builds a snake from cells given head first.
func NewSnakeFrom(cells ...Cell) *Snake {
	if len(cells) == 0 {
		panic("snake: a snake needs at least one cell")
	}
	s := &Snake{cells: make([]Cell, len(cells), len(cells)+8)}
	for i, c := range cells {
		s.cells[len(cells)-1-i] = c
	}
	return s
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.cells[len(s.cells)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	for i, c := range s.cells {
		out[len(s.cells)-1-i] = c
	}
	return out
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c Cell) bool {
	for _, seg := range s.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// SelfColliding reports whether the head shares a cell with any other segment.
func (s *Snake) SelfColliding() bool {
	head := s.Head()
	for _, seg := range s.cells[:len(s.cells)-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// Advance moves every segment onto its predecessor's cell. The head keeps its
// cell until MoveHead is called, so for that instant it overlaps the neck.
// With grow set the old tail cell is kept as a new last segment.
func (s *Snake) Advance(grow bool) {
	s.cells = append(s.cells, s.Head())
	if !grow {
		s.cells = s.cells[1:]
	}
}

// MoveHead places the head on c.
func (s *Snake) MoveHead(c Cell) {
	s.cells[len(s.cells)-1] = c
}

// GrowthCount returns how many segments were gained since creation.
func (s *Snake) GrowthCount() int {
	return len(s.cells) - InitialLength
}
