// Command boarddump builds a board, optionally flips it and applies moves,
// then prints its bitmask dump and piece placement.
//
//	boarddump -move e2e4 -move g8f6 -merged
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/logging"
	"github.com/hailam/chessboard/internal/profiling"
)

// moveList collects repeated -move flags.
type moveList []string

func (m *moveList) String() string { return strings.Join(*m, ",") }

func (m *moveList) Set(s string) error {
	*m = append(*m, s)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("boarddump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		placement = fs.String("placement", "", "piece placement (FEN first field)")
		empty     = fs.Bool("empty", false, "start from an empty board")
		flipped   = fs.Bool("flipped", false, "build the board flipped")
		flip      = fs.Bool("flip", false, "flip the board after building it")
		merged    = fs.Bool("merged", false, "print one merged grid instead of one grid per kind")
		prof      = fs.String("profile", "", "enable profiling: cpu or mem")
		verbosity = fs.Int("v", 0, "log verbosity")
		moves     moveList
	)
	fs.Var(&moves, "move", "move to apply, e.g. e2e4 (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *empty && *placement != "" {
		fmt.Fprintln(stderr, "boarddump: -empty and -placement are exclusive")
		return 2
	}

	stop, err := profiling.Start(*prof, "")
	if err != nil {
		fmt.Fprintln(stderr, "boarddump:", err)
		return 2
	}
	defer stop()

	logger := logging.NewTo(stderr, *verbosity)

	var b *board.Board
	switch {
	case *empty:
		b = board.NewEmptyBoard()
		if *flipped {
			b.Flip()
		}
	case *placement != "":
		if b, err = board.ParsePlacement(*flipped, *placement); err != nil {
			fmt.Fprintln(stderr, "boarddump:", err)
			return 1
		}
	default:
		b = board.NewBoard(*flipped)
	}
	b.SetLogger(logger.WithName("board"))

	if *flip {
		b.Flip()
	}

	for _, m := range moves {
		if err := applyMove(b, m); err != nil {
			fmt.Fprintf(stderr, "boarddump: move %s: %v\n", m, err)
			return 1
		}
	}

	fmt.Fprint(stdout, b.Dump(*merged))
	fmt.Fprintf(stdout, "placement: %s\n", b.Placement())

	if err := b.Validate(); err != nil {
		fmt.Fprintln(stderr, "boarddump:", err)
		return 1
	}
	return 0
}

// applyMove parses a move such as "e2e4" in the board's orientation and
// applies it with the kind found on the origin square.
func applyMove(b *board.Board, m string) error {
	if len(m) != 4 {
		return errors.New("want origin and target, e.g. e2e4")
	}
	origin, err := board.FromAlgebraic(b.Flipped(), m[:2])
	if err != nil {
		return err
	}
	target, err := board.FromAlgebraic(b.Flipped(), m[2:])
	if err != nil {
		return err
	}

	kind := b.At(origin.Grid())
	if kind == board.NoPiece {
		return fmt.Errorf("no piece on %s", origin.Algebraic())
	}
	return b.MoveWithHint(kind, origin.Grid(), target.Grid())
}
