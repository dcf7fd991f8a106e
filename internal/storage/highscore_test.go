package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lemon-snake/internal/core"
)

var _ core.HighScoreKeeper = (*HighScoreFile)(nil)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	return string(data)
}

func TestHighScoreFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	h := NewHighScoreFile(path, quietLogger())

	if got := h.Submit(5); got != 5 {
		t.Errorf("Submit(5) = %d, expected 5", got)
	}
	if got := readFile(t, path); got != "5" {
		t.Errorf("file = %q, expected \"5\"", got)
	}
}

func TestHighScoreFileSubmit(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		score    int
		want     int
		wantFile string
	}{
		{"beats stored", "3", 8, 8, "8"},
		{"below stored", "10", 4, 10, "10"},
		{"equal to stored", "7", 7, 7, "7"},
		{"trailing newline", "12\n", 2, 12, "12\n"},
		{"corrupt", "lemon", 6, 6, "6"},
		{"empty", "", 0, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tt.stored), 0o644); err != nil {
				t.Fatal(err)
			}

			h := NewHighScoreFile(path, quietLogger())
			if got := h.Submit(tt.score); got != tt.want {
				t.Errorf("Submit(%d) = %d, expected %d", tt.score, got, tt.want)
			}
			if got := readFile(t, path); got != tt.wantFile {
				t.Errorf("file = %q, expected %q", got, tt.wantFile)
			}
		})
	}
}

func TestHighScoreFileUnreadable(t *testing.T) {
	// A directory at the file path cannot be read as a file.
	path := t.TempDir()
	h := NewHighScoreFile(path, quietLogger())

	if got := h.Submit(3); got != -1 {
		t.Errorf("Submit() = %d, expected -1", got)
	}
	if got := h.Read(); got != -1 {
		t.Errorf("Read() = %d, expected -1", got)
	}
}

func TestHighScoreFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "highscore.txt")
	h := NewHighScoreFile(path, quietLogger())

	if got := h.Submit(3); got != -1 {
		t.Errorf("Submit() = %d, expected -1", got)
	}
}

func TestHighScoreFileRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	h := NewHighScoreFile(path, nil)

	if got := h.Read(); got != -1 {
		t.Errorf("Read() of missing file = %d, expected -1", got)
	}
	h.Submit(9)
	if got := h.Read(); got != 9 {
		t.Errorf("Read() = %d, expected 9", got)
	}
	if h.Path() != path {
		t.Errorf("Path() = %q", h.Path())
	}
}
