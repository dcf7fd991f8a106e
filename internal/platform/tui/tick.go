// Package tui provides the Bubble Tea frontend for the snake game.
// It owns the tick timer, maps keys to game actions and draws the screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
//
// Gen identifies the timer chain that produced it. Pausing or ending the game
// lets the chain lapse; resuming starts a new one, so a tick still in flight
// from the old chain is dropped instead of doubling the speed.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
