// Chessboard - a chess board viewer and editor built with Ebitengine
package main

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/logging"
	"github.com/hailam/chessboard/internal/profiling"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
)

func main() {
	if err := run(os.Args[1:], os.Getenv); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so that deferred cleanup closes the
// database and flushes any profile.
func run(args []string, getenv func(string) string) error {
	cfg, err := config.Parse(args, getenv)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Verbosity)

	store := openStorage(cfg, logger)
	if store != nil {
		defer store.Close()
		prefs, err := store.LoadPreferences()
		if err != nil {
			logger.Error(err, "cannot load preferences")
		}
		cfg.ApplyPreferences(prefs)
		logger = logging.New(cfg.Verbosity)
	}

	stop, err := profiling.Start(cfg.Profile, "")
	if err != nil {
		return err
	}
	defer stop()

	b, err := cfg.Board()
	if err != nil {
		return err
	}
	b.SetLogger(logger.WithName("board"))

	game, err := ui.NewGame(ui.Options{
		Board:           b,
		SquareSize:      cfg.SquareSize,
		ShowCoordinates: cfg.ShowCoordinates,
		Mute:            cfg.Mute,
		Storage:         store,
		Preferences:     cfg.Preferences(),
		Logger:          logger.WithName("ui"),
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowTitle("Chessboard")

	return ebiten.RunGame(game)
}

// openStorage opens the preference database, or returns nil when storage is
// disabled or unavailable.
func openStorage(cfg config.Config, logger logr.Logger) *storage.Storage {
	if cfg.NoStorage {
		return nil
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		var err error
		if dataDir, err = storage.GetDataDir(); err != nil {
			logger.Error(err, "cannot resolve data directory")
			return nil
		}
	}
	dbDir, err := storage.DatabaseDir(dataDir)
	if err != nil {
		logger.Error(err, "cannot create database directory", "dir", dataDir)
		return nil
	}

	store, err := storage.Open(dbDir, logger.WithName("storage"))
	if err != nil {
		logger.Error(err, "storage disabled")
		return nil
	}
	logger.V(1).Info("storage opened", "dir", dbDir)
	return store
}
