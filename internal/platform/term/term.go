// Package term is a tcell frontend. Input is read on its own goroutine and
// the tick loop runs in an engine.Scheduler, so every game call is guarded.
package term

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/lemon-snake/internal/audio"
	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/engine"
	"github.com/vovakirdan/lemon-snake/internal/games/snake"
	"github.com/vovakirdan/lemon-snake/internal/registry"
	"github.com/vovakirdan/lemon-snake/internal/storage"
)

// Options carries the optional collaborators of a session.
type Options struct {
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
}

// palette maps core colors to xterm palette indexes, matching the Bubble Tea frontend.
var palette = map[core.Color]int{
	core.ColorRed:          1,
	core.ColorGreen:        2,
	core.ColorYellow:       3,
	core.ColorWhite:        7,
	core.ColorBrightRed:    9,
	core.ColorBrightGreen:  10,
	core.ColorBrightYellow: 226,
	core.ColorBrightWhite:  15,
	core.ColorGray:         245,
}

// styleFor returns the tcell style of a core color.
func styleFor(c core.Color) tcell.Style {
	idx, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	st := tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
	if c == core.ColorBrightRed {
		st = st.Bold(true)
	}
	return st
}

// actionFor maps a key, or a rune for tcell.KeyRune, to a game action.
func actionFor(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'p':
			return core.ActionPause
		case 'r':
			return core.ActionRestart
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// blit copies a screen buffer onto a tcell screen.
func blit(dst tcell.Screen, src *core.Screen) {
	dst.Clear()
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	dst.Show()
}

// Run opens the terminal and plays game until the player quits or ctx ends.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return runOn(ctx, screen, game, cfg, opts)
}

// runOn drives game on an initialised screen.
func runOn(ctx context.Context, screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game.Reset(cfg)

	redraw := make(chan struct{}, 1)
	var sched *engine.Scheduler
	sched = engine.NewScheduler(game, func(res core.StepResult) {
		if opts.Sound != nil {
			opts.Sound.PlayEvents(res.Events)
		}
		if res.Has(core.EventGameOver) {
			saveRound(sched, cfg.Seed, res.State, opts)
		}
		select {
		case redraw <- struct{}{}:
		default:
		}
	})

	go sched.Run(ctx) //nolint:errcheck // Returns ctx.Err() on shutdown

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	buf := core.NewScreen(screen.Size())
	draw := func() {
		w, h := screen.Size()
		buf.Resize(w, h)
		sched.Do(func(g registry.Game) { g.Render(buf) })
		blit(screen, buf)
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := actionFor(ev.Key(), ev.Rune())
				if a == core.ActionQuit {
					return nil
				}
				if a != core.ActionNone {
					sched.Send(a)
					draw()
				}
			case *tcell.EventResize:
				screen.Sync()
				draw()
			}

		case <-redraw:
			draw()
		}
	}
}

// saveRound appends a finished round to the score history.
func saveRound(sched *engine.Scheduler, seed int64, state core.GameState, opts Options) {
	if opts.Store == nil || state.Score <= 0 {
		return
	}

	var entry storage.ScoreEntry
	sched.Do(func(g registry.Game) {
		entry = storage.ScoreEntry{GameID: g.ID(), Score: state.Score, Seed: seed}
		if sg, ok := g.(interface{ Snapshot() snake.Snapshot }); ok {
			snap := sg.Snapshot()
			entry.Length = snap.SnakeLen
			entry.Ticks = snap.Tick
		}
	})

	if _, err := opts.Store.SaveRound(entry); err != nil {
		opts.Logger.Warn("cannot save round", "game", entry.GameID, "error", err)
	}
}
