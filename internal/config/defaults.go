package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			ClassicMS:  90,
			PausableMS: 100,
			GrowthMS:   80,
		},
		HighScore: HighScoreConfig{
			Path: "highscore.txt",
		},
		Scores: ScoresConfig{
			DBPath: "~/.snake/scores.db",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
