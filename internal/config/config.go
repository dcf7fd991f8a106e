// Package config provides YAML-based configuration loading for the snake
// game: board size, tick timing, persistence paths and audio.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Timing    TimingConfig    `yaml:"timing"`
	HighScore HighScoreConfig `yaml:"high_score"`
	Scores    ScoresConfig    `yaml:"scores"`
	Audio     AudioConfig     `yaml:"audio"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the tick interval of each variant in milliseconds.
type TimingConfig struct {
	ClassicMS  int `yaml:"classic_ms"`
	PausableMS int `yaml:"pausable_ms"`
	GrowthMS   int `yaml:"growth_ms"`
}

// HighScoreConfig locates the plain-text high score file.
type HighScoreConfig struct {
	Path string `yaml:"path"`
}

// ScoresConfig locates the SQLite score history.
type ScoresConfig struct {
	DBPath string `yaml:"db_path"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Smallest board that can host a starting snake.
const (
	minGridWidth  = 1
	minGridHeight = 4
)

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < minGridWidth {
		return fmt.Errorf("config: grid width %d is below %d", c.Grid.Width, minGridWidth)
	}
	if c.Grid.Height < minGridHeight {
		return fmt.Errorf("config: grid height %d is below %d", c.Grid.Height, minGridHeight)
	}
	for name, ms := range map[string]int{
		"classic_ms":  c.Timing.ClassicMS,
		"pausable_ms": c.Timing.PausableMS,
		"growth_ms":   c.Timing.GrowthMS,
	} {
		if ms <= 0 {
			return fmt.Errorf("config: timing.%s must be positive, got %d", name, ms)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume %.2f outside [0, 1]", c.Audio.Volume)
	}
	return nil
}

// TickInterval returns the configured interval for a variant, or zero for
// an unknown variant so the game keeps its own default.
func (c SnakeConfig) TickInterval(variantID string) time.Duration {
	var ms int
	switch variantID {
	case "classic":
		ms = c.Timing.ClassicMS
	case "pausable":
		ms = c.Timing.PausableMS
	case "growth":
		ms = c.Timing.GrowthMS
	}
	return time.Duration(ms) * time.Millisecond
}
