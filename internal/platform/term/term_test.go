package term

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/games/snake"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{tcell.KeyUp, 0, core.ActionUp},
		{tcell.KeyLeft, 0, core.ActionLeft},
		{tcell.KeyRune, 'd', core.ActionRight},
		{tcell.KeyRune, 'j', core.ActionDown},
		{tcell.KeyRune, 'p', core.ActionPause},
		{tcell.KeyEscape, 0, core.ActionPause},
		{tcell.KeyRune, 'r', core.ActionRestart},
		{tcell.KeyRune, 'q', core.ActionQuit},
		{tcell.KeyCtrlC, 0, core.ActionQuit},
		{tcell.KeyRune, 'x', core.ActionNone},
	}
	for _, tt := range tests {
		if got := actionFor(tt.key, tt.r); got != tt.want {
			t.Errorf("actionFor(%v, %q) = %v, expected %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestBlit(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(10, 3)

	buf := core.NewScreen(10, 3)
	buf.SetColored(2, 1, '█', core.ColorBrightGreen)
	blit(sim, buf)

	r, _, style, _ := sim.GetContent(2, 1)
	if r != '█' {
		t.Errorf("rune = %q, expected block", r)
	}
	if style != styleFor(core.ColorBrightGreen) {
		t.Error("cell should carry the bright green style")
	}
}

func TestStyleForDefault(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should map to the default style")
	}
}

func TestRunOnContextCancel(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 30)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	g := snake.NewClassic()
	if err := runOn(ctx, sim, g, core.RuntimeConfig{Seed: 3, TickInterval: time.Millisecond},
		Options{Logger: log.New(io.Discard)}); err != nil {
		t.Errorf("runOn() = %v", err)
	}
}
