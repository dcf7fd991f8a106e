// Package engine drives a game on its own goroutine for frontends that do
// not serialise input and ticks for us.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/registry"
)

// Scheduler owns the tick timer of one game.
//
// Every call into the game goes through a single mutex, so input delivered on
// another goroutine is never observed half way through a tick. While the game
// reports it is not ticking the loop parks until an action resumes it.
type Scheduler struct {
	mu     sync.Mutex
	game   registry.Game
	onStep func(core.StepResult)

	wake  chan struct{}
	ticks atomic.Uint64
}

// NewScheduler wraps g. onStep, if not nil, is called after every tick
// without the lock held.
func NewScheduler(g registry.Game, onStep func(core.StepResult)) *Scheduler {
	return &Scheduler{
		game:   g,
		onStep: onStep,
		wake:   make(chan struct{}, 1),
	}
}

// Send applies one input action.
func (s *Scheduler) Send(a core.Action) {
	s.mu.Lock()
	was := s.game.Ticking()
	s.game.HandleAction(a)
	now := s.game.Ticking()
	s.mu.Unlock()

	if !was && now {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// Step runs a single tick immediately.
func (s *Scheduler) Step() core.StepResult {
	s.mu.Lock()
	res := s.game.Tick()
	s.mu.Unlock()

	if s.onStep != nil {
		s.onStep(res)
	}
	s.ticks.Add(1)
	return res
}

// Do runs fn with exclusive access to the game, e.g. to render it.
func (s *Scheduler) Do(fn func(g registry.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Ticks returns the number of ticks run so far.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// Run ticks the game until ctx is done and returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		s.mu.Lock()
		ticking := s.game.Ticking()
		interval := s.game.TickInterval()
		s.mu.Unlock()

		if !ticking {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.wake:
				continue
			}
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			s.Step()
		}
	}
}
