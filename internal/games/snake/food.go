package snake

import "math/rand"

// NoFood marks a board with no free cell left.
var NoFood = Cell{X: -1, Y: -1}

// PlaceFood picks a random cell not covered by the snake.
//
// It resamples until it finds a free cell. The snake only ever covers a small
// share of the board in real play, so there is no attempt limit; a board with
// no free cell at all yields NoFood.
func PlaceFood(rng *rand.Rand, grid Grid, s *Snake) Cell {
	if s.Len() >= grid.Area() && coversGrid(grid, s) {
		return NoFood
	}
	for {
		c := grid.RandomCell(rng)
		if !s.Contains(c) {
			return c
		}
	}
}

func coversGrid(grid Grid, s *Snake) bool {
	seen := make(map[Cell]struct{}, s.Len())
	for _, c := range s.cells {
		seen[c] = struct{}{}
	}
	return len(seen) >= grid.Area()
}
