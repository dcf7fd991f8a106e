package snake

import (
	"math/rand"
	"testing"
)

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	grid := NewGrid(4, 4)
	s := NewSnakeFrom(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{3, 0}, Cell{3, 1}, Cell{2, 1})
	rng := rand.New(rand.NewSource(8))

	for range 200 {
		c := PlaceFood(rng, grid, s)
		if s.Contains(c) {
			t.Fatalf("food %v placed on snake", c)
		}
		if !grid.Contains(c) {
			t.Fatalf("food %v outside grid", c)
		}
	}
}

func TestPlaceFoodLastFreeCell(t *testing.T) {
	grid := NewGrid(1, 4)
	s := NewSnakeFrom(Cell{0, 0}, Cell{0, 1}, Cell{0, 3})

	if c := PlaceFood(rand.New(rand.NewSource(1)), grid, s); c != (Cell{0, 2}) {
		t.Errorf("PlaceFood() = %v, expected the only free cell (0,2)", c)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	grid := NewGrid(1, 4)
	s := NewSnakeFrom(Cell{0, 0}, Cell{0, 1}, Cell{0, 2}, Cell{0, 3})

	if c := PlaceFood(rand.New(rand.NewSource(1)), grid, s); c != NoFood {
		t.Errorf("PlaceFood() = %v, expected NoFood", c)
	}
}

func TestPlaceFoodDeterministic(t *testing.T) {
	grid := NewGrid(20, 20)
	s := NewSnakeFrom(Cell{5, 5}, Cell{5, 6}, Cell{5, 7})

	a := PlaceFood(rand.New(rand.NewSource(77)), grid, s)
	b := PlaceFood(rand.New(rand.NewSource(77)), grid, s)
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}
