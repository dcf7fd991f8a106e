package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lemon-snake/internal/platform/term"
	"github.com/vovakirdan/lemon-snake/internal/platform/tui"
	"github.com/vovakirdan/lemon-snake/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (classic when omitted).

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause (pausable variant)
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Frontends:
  tea    - Bubble Tea (default)
  tcell  - tcell screen driven by its own tick goroutine

Examples:
  snake play
  snake play growth
  snake play pausable --frontend tcell
  snake play classic --seed 42 --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Frontend: tea or tcell")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "classic"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sess := openSession(settings)
	cfg := sess.runtimeConfig(settings, gameID, flagSeed)
	logger.Debug("starting game", "variant", gameID, "seed", cfg.Seed, "frontend", flagFrontend)

	var runErr error
	switch flagFrontend {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		runErr = term.Run(ctx, game, cfg, term.Options{
			Store:  sess.store,
			Sound:  sess.sound,
			Logger: logger,
		})
		stop()
	case "tea", "":
		width, height := terminalSize()
		runErr = tui.Run(game, cfg, tui.Options{
			Store:  sess.store,
			Sound:  sess.sound,
			Width:  width,
			Height: height,
		})
	default:
		runErr = fmt.Errorf("unknown frontend %q (want tea or tcell)", flagFrontend)
	}

	// Close session before potential exit
	sess.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
