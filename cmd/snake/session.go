package main

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/lemon-snake/internal/audio"
	"github.com/vovakirdan/lemon-snake/internal/config"
	"github.com/vovakirdan/lemon-snake/internal/core"
	"github.com/vovakirdan/lemon-snake/internal/storage"
)

// session holds the collaborators shared by every game started from one command.
type session struct {
	store     *storage.Store
	sound     *audio.SoundManager
	highScore *storage.HighScoreFile
}

// openSession opens score storage and audio. Failures only disable the
// feature: the game still runs.
func openSession(cfg config.SnakeConfig) *session {
	s := &session{
		highScore: storage.NewHighScoreFile(config.ExpandHome(cfg.HighScore.Path), logger),
	}

	store, err := storage.Open(cfg.Scores.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		s.store = store
	}

	if cfg.Audio.Enabled {
		sound := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "error", err)
		} else {
			s.sound = sound
		}
	}

	return s
}

// Close releases storage and audio.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.sound != nil {
		s.sound.Close()
	}
}

// runtimeConfig builds the per-game settings for a variant.
func (s *session) runtimeConfig(cfg config.SnakeConfig, variantID string, seed int64) core.RuntimeConfig {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		GridW:        cfg.Grid.Width,
		GridH:        cfg.Grid.Height,
		TickInterval: cfg.TickInterval(variantID),
		Seed:         seed,
		HighScores:   s.highScore,
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
