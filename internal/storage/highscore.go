package storage

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// HighScoreFile keeps the single best score as a decimal integer in a text file.
//
// Every failure degrades to -1 ("unknown") instead of an error: a broken
// high score file must never stop a round from ending.
type HighScoreFile struct {
	path   string
	logger *log.Logger
}

// NewHighScoreFile returns a keeper backed by the file at path.
// A nil logger falls back to the package default logger.
func NewHighScoreFile(path string, logger *log.Logger) *HighScoreFile {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreFile{path: path, logger: logger}
}

// Path returns the file location.
func (h *HighScoreFile) Path() string {
	return h.path
}

// Submit records score if it beats the stored value and returns the high
// score after the update, or -1 when the file cannot be read or written.
//
// A missing or unparsable file is replaced with score. A stored value that is
// greater than or equal to score leaves the file untouched.
func (h *HighScoreFile) Submit(score int) int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("cannot read high score file", "path", h.path, "error", err)
			return -1
		}
		h.logger.Debug("no high score file yet", "path", h.path)
		return h.write(score)
	}

	stored, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		h.logger.Warn("high score file is corrupt, replacing it", "path", h.path, "error", err)
		return h.write(score)
	}

	if stored < score {
		return h.write(score)
	}
	return stored
}

// Read returns the stored high score without changing it, or -1 when the
// file is missing or unreadable.
func (h *HighScoreFile) Read() int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return -1
	}
	stored, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return -1
	}
	return stored
}

func (h *HighScoreFile) write(score int) int {
	if err := os.WriteFile(h.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		h.logger.Warn("cannot write high score file", "path", h.path, "error", err)
		return -1
	}
	h.logger.Debug("new high score", "score", score)
	return score
}
