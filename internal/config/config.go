// Package config reads the command line and CHESSBOARD_* environment
// variables, and overlays stored preferences on whatever was not given
// explicitly.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/storage"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	MinSquareSize     = 32
	MaxSquareSize     = 160
	DefaultSquareSize = 80
)

// Flag names. They double as keys of Config.Explicit.
const (
	FlagSize      = "size"
	FlagFlipped   = "flipped"
	FlagEmpty     = "empty"
	FlagPlacement = "placement"
	FlagCoords    = "coords"
	FlagDataDir   = "data-dir"
	FlagNoStorage = "no-storage"
	FlagMute      = "mute"
	FlagVerbosity = "v"
	FlagProfile   = "profile"
)

var envNames = map[string]string{
	FlagSize:      "CHESSBOARD_SIZE",
	FlagFlipped:   "CHESSBOARD_FLIPPED",
	FlagEmpty:     "CHESSBOARD_EMPTY",
	FlagPlacement: "CHESSBOARD_PLACEMENT",
	FlagCoords:    "CHESSBOARD_COORDS",
	FlagDataDir:   "CHESSBOARD_DATA_DIR",
	FlagNoStorage: "CHESSBOARD_NO_STORAGE",
	FlagMute:      "CHESSBOARD_MUTE",
	FlagVerbosity: "CHESSBOARD_VERBOSITY",
	FlagProfile:   "CHESSBOARD_PROFILE",
}

// Config holds the desktop viewer settings.
type Config struct {
	SquareSize      int
	Flipped         bool
	Empty           bool
	Placement       string
	ShowCoordinates bool
	DataDir         string
	NoStorage       bool
	Mute            bool
	Verbosity       int
	Profile         string

	// Explicit records the flags given on the command line or through the
	// environment. Those win over stored preferences.
	Explicit map[string]bool
}

// Default returns the configuration used when nothing is given.
func Default() Config {
	return Config{
		SquareSize:      DefaultSquareSize,
		ShowCoordinates: true,
		Explicit:        map[string]bool{},
	}
}

// Parse parses args (without the program name). getenv supplies
// environment fallbacks, usually os.Getenv.
func Parse(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	fs := flag.NewFlagSet("chessboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var envErr error
	env := func(name string) (string, bool) {
		v := getenv(envNames[name])
		if v != "" {
			cfg.Explicit[name] = true
		}
		return v, v != ""
	}
	envBool := func(name string, def bool) bool {
		v, ok := env(name)
		if !ok {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil && envErr == nil {
			envErr = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envNames[name], v, err)
		}
		return b
	}
	envInt := func(name string, def int) int {
		v, ok := env(name)
		if !ok {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil && envErr == nil {
			envErr = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envNames[name], v, err)
		}
		return n
	}
	envString := func(name, def string) string {
		if v, ok := env(name); ok {
			return v
		}
		return def
	}

	fs.IntVar(&cfg.SquareSize, FlagSize, envInt(FlagSize, cfg.SquareSize), "square size in pixels")
	fs.BoolVar(&cfg.Flipped, FlagFlipped, envBool(FlagFlipped, cfg.Flipped), "start with black at the bottom")
	fs.BoolVar(&cfg.Empty, FlagEmpty, envBool(FlagEmpty, cfg.Empty), "start with an empty board")
	fs.StringVar(&cfg.Placement, FlagPlacement, envString(FlagPlacement, cfg.Placement), "initial piece placement (FEN first field)")
	fs.BoolVar(&cfg.ShowCoordinates, FlagCoords, envBool(FlagCoords, cfg.ShowCoordinates), "draw file and rank labels")
	fs.StringVar(&cfg.DataDir, FlagDataDir, envString(FlagDataDir, cfg.DataDir), "directory for stored preferences")
	fs.BoolVar(&cfg.NoStorage, FlagNoStorage, envBool(FlagNoStorage, cfg.NoStorage), "do not read or write preferences")
	fs.BoolVar(&cfg.Mute, FlagMute, envBool(FlagMute, cfg.Mute), "disable sound effects")
	fs.IntVar(&cfg.Verbosity, FlagVerbosity, envInt(FlagVerbosity, cfg.Verbosity), "log verbosity")
	fs.StringVar(&cfg.Profile, FlagProfile, envString(FlagProfile, cfg.Profile), "enable profiling: cpu or mem")

	if envErr != nil {
		return cfg, envErr
	}
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", ErrInvalidConfig, fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { cfg.Explicit[f.Name] = true })

	return cfg, cfg.Validate()
}

// Validate checks value ranges and combinations.
func (c Config) Validate() error {
	if c.SquareSize < MinSquareSize || c.SquareSize > MaxSquareSize {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrInvalidConfig, FlagSize, c.SquareSize, MinSquareSize, MaxSquareSize)
	}
	if c.Empty && c.Placement != "" {
		return fmt.Errorf("%w: %s and %s are exclusive", ErrInvalidConfig, FlagEmpty, FlagPlacement)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w: %s must be >= 0", ErrInvalidConfig, FlagVerbosity)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("%w: %s %q, want cpu or mem", ErrInvalidConfig, FlagProfile, c.Profile)
	}
	return nil
}

// ApplyPreferences copies stored values into c for every setting that was
// not given explicitly. Out-of-range stored sizes are ignored.
func (c *Config) ApplyPreferences(p *storage.Preferences) {
	if p == nil {
		return
	}
	if !c.Explicit[FlagFlipped] {
		c.Flipped = p.Flipped
	}
	if !c.Explicit[FlagSize] && p.SquareSize >= MinSquareSize && p.SquareSize <= MaxSquareSize {
		c.SquareSize = p.SquareSize
	}
	if !c.Explicit[FlagCoords] {
		c.ShowCoordinates = p.ShowCoordinates
	}
	if !c.Explicit[FlagVerbosity] && p.Verbosity >= 0 {
		c.Verbosity = p.Verbosity
	}
}

// Preferences returns the persisted subset of c.
func (c Config) Preferences() *storage.Preferences {
	return &storage.Preferences{
		Flipped:         c.Flipped,
		SquareSize:      c.SquareSize,
		ShowCoordinates: c.ShowCoordinates,
		Verbosity:       c.Verbosity,
	}
}

// Board builds the initial board: empty, parsed from Placement, or the
// standard opening, in the configured orientation.
func (c Config) Board() (*board.Board, error) {
	switch {
	case c.Empty:
		b := board.NewEmptyBoard()
		if c.Flipped {
			b.Flip()
		}
		return b, nil
	case c.Placement != "":
		b, err := board.ParsePlacement(c.Flipped, c.Placement)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, FlagPlacement, err)
		}
		return b, nil
	default:
		return board.NewBoard(c.Flipped), nil
	}
}
