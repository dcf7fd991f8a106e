package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/games/snake"
	"github.com/vovakirdan/lemon-snake/internal/registry"
)

var (
	flagMoves string
	flagTicks int
)

var replayCmd = &cobra.Command{
	Use:   "replay <variant>",
	Short: "Run a scripted game without a terminal",
	Long: `Play a variant headless from a move script and print the final state.

Each character of --moves is the input for one tick:
  U D L R  - steer
  .        - no input

After the script runs out the game keeps ticking until --ticks is reached.
The same --seed and script always produce the same result.

Examples:
  snake replay classic --seed 7 --moves LLUURR
  snake replay growth --seed 1 --moves R...D... --ticks 50`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script (U, D, L, R, '.' for no input)")
	replayCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Total ticks to run (default: length of --moves)")
}

// tracedGame is a game that exposes its full state as text.
type tracedGame interface {
	registry.Game
	Snapshot() snake.Snapshot
	Board() string
}

func runReplay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		os.Exit(1)
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		GridW: settings.Grid.Width,
		GridH: settings.Grid.Height,
		Seed:  flagSeed,
	}
	if err := replay(os.Stdout, game, cfg, moves, flagTicks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseMoves turns a move script into one action per tick.
func parseMoves(script string) ([]core.Action, error) {
	actions := make([]core.Action, 0, len(script))
	for i, r := range strings.ToUpper(script) {
		switch r {
		case 'U':
			actions = append(actions, core.ActionUp)
		case 'D':
			actions = append(actions, core.ActionDown)
		case 'L':
			actions = append(actions, core.ActionLeft)
		case 'R':
			actions = append(actions, core.ActionRight)
		case '.':
			actions = append(actions, core.ActionNone)
		default:
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
	}
	return actions, nil
}

// replay resets the game, feeds one action per tick and writes the final
// snapshot and board to w. It stops early at game over.
func replay(w io.Writer, game registry.Game, cfg core.RuntimeConfig, moves []core.Action, ticks int) error {
	traced, ok := game.(tracedGame)
	if !ok {
		return fmt.Errorf("game %q does not support replay", game.ID())
	}
	if ticks < len(moves) {
		ticks = len(moves)
	}

	traced.Reset(cfg)
	for i := 0; i < ticks; i++ {
		if i < len(moves) && moves[i] != core.ActionNone {
			traced.HandleAction(moves[i])
		}
		res := traced.Tick()
		if res.State.GameOver {
			break
		}
	}

	if _, err := fmt.Fprint(w, traced.Snapshot().String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, traced.Board())
	return err
}
