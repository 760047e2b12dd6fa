package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/storage"
)

func noEnv(string) string { return "" }

func TestRunBadPlacementClosesStorage(t *testing.T) {
	dataDir := t.TempDir()
	err := run([]string{"-data-dir", dataDir, "-placement", "8/8", "-mute"}, noEnv)
	if !errors.Is(err, config.ErrInvalidConfig) || !errors.Is(err, board.ErrInvalidPlacement) {
		t.Fatalf("run error = %v; want ErrInvalidPlacement", err)
	}

	// Badger holds a directory lock until closed.
	s, err := storage.Open(filepath.Join(dataDir, "db"), logr.Discard())
	if err != nil {
		t.Fatalf("database left open after run returned: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestRunBadFlags(t *testing.T) {
	if err := run([]string{"-size", "5"}, noEnv); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("run error = %v; want ErrInvalidConfig", err)
	}
}
