// snake is a terminal snake game.
//
// Usage:
//
//	snake list                - List available variants
//	snake play [variant]      - Play a variant (default: classic)
//	snake menu                - Pick variants interactively
//	snake scores <variant>    - Show the score history of a variant
//	snake replay <variant>    - Run a scripted game headless and print the result
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom YAML config
//	--db <path>         - Set database path (default from config: ~/.snake/scores.db)
//	--highscore <path>  - Set high score file (default from config: highscore.txt)
//	--sound             - Enable sound cues
//	--verbose           - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lemon-snake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/lemon-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagHighScore string
	flagSound     bool
	flagVerbose   bool
)

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	settings config.SnakeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat lemons in your terminal",
	Long: `Snake on a wrap-around board. Steer the snake onto the lemon to grow,
and do not run into your own tail.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View score history
  replay   - Run a scripted game without a terminal

Examples:
  snake play
  snake play pausable --frontend tcell
  snake menu --sound
  snake scores classic
  snake replay classic --seed 7 --moves LLUURR`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to high score file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound cues")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup loads the configuration and applies flag overrides.
func setup(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Scores.DBPath = flagDBPath
	}
	if flagHighScore != "" {
		cfg.HighScore.Path = flagHighScore
	}
	if flagSound {
		cfg.Audio.Enabled = true
	}

	settings = cfg
	logger.Debug("configuration loaded",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"db", cfg.Scores.DBPath,
		"highscore", cfg.HighScore.Path,
		"sound", cfg.Audio.Enabled)
	return nil
}
