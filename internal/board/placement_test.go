package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlacementStart(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		b := NewBoard(flipped)
		if got := b.Placement(); got != StartPlacement {
			t.Errorf("NewBoard(%t).Placement() = %s; want %s", flipped, got, StartPlacement)
		}
	}
	if got := NewEmptyBoard().Placement(); got != "8/8/8/8/8/8/8/8" {
		t.Errorf("empty Placement() = %s", got)
	}
}

func TestParsePlacementClassifies(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		flipped   bool
		want      BoardState
	}{
		{"start", StartPlacement, false, StateStandard},
		{"start flipped", StartPlacement, true, StateStandard},
		{"start with fields", StartPlacement + " w KQkq - 0 1", false, StateStandard},
		{"empty", "8/8/8/8/8/8/8/8", false, StateEmpty},
		{"endgame", "8/8/4k3/8/8/3QK3/8/8", false, StateArbitrary},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParsePlacement(tc.flipped, tc.placement)
			if err != nil {
				t.Fatalf("ParsePlacement error: %v", err)
			}
			if b.State() != tc.want {
				t.Errorf("State() = %v; want %v", b.State(), tc.want)
			}
			if b.Flipped() != tc.flipped {
				t.Errorf("Flipped() = %t; want %t", b.Flipped(), tc.flipped)
			}
		})
	}
}

func TestParsePlacementRoundTrip(t *testing.T) {
	placements := []string{
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
		"8/8/4k3/8/8/3QK3/8/8",
		"7k/8/8/8/8/8/8/K7",
	}
	for _, p := range placements {
		for _, flipped := range []bool{false, true} {
			b, err := ParsePlacement(flipped, p)
			if err != nil {
				t.Fatalf("ParsePlacement(%t, %s) error: %v", flipped, p, err)
			}
			if got := b.Placement(); got != p {
				t.Errorf("round trip (%t) = %s; want %s", flipped, got, p)
			}
		}
	}
}

func TestParsePlacementOrientation(t *testing.T) {
	b, err := ParsePlacement(false, "7k/8/8/8/8/8/8/K7")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.At(MustCell(0, 0)); got != WhiteKing {
		t.Errorf("At(0, 0) = %v; want white king", got)
	}

	f, err := ParsePlacement(true, "7k/8/8/8/8/8/8/K7")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.At(MustCell(7, 7)); got != WhiteKing {
		t.Errorf("flipped At(7, 7) = %v; want white king", got)
	}
	if got := f.At(MustCell(0, 0)); got != BlackKing {
		t.Errorf("flipped At(0, 0) = %v; want black king", got)
	}

	b.Flip()
	if diff := cmp.Diff(f.Masks(), b.Masks()); diff != "" {
		t.Errorf("flip of parsed board differs from flipped parse (-want +got):\n%s", diff)
	}
}

func TestParsePlacementErrors(t *testing.T) {
	tests := []struct {
		name      string
		placement string
	}{
		{"empty string", ""},
		{"seven ranks", "8/8/8/8/8/8/8"},
		{"bad piece", "8/8/8/8/8/8/8/7x"},
		{"short rank", "8/8/8/8/8/8/8/7"},
		{"long rank", "8/8/8/8/8/8/8/8p"},
		{"digit overflow", "8/8/8/8/8/8/8/72"},
		{"non-ascii piece", "rnbqkbnr/pppppppp/8/8/8/8/ŐPPPPPPP/RNBQKBNR"},
		{"non-ascii digit", "8/8/8/8/8/8/8/ĸ"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePlacement(false, tc.placement)
			if !errors.Is(err, ErrInvalidPlacement) {
				t.Errorf("ParsePlacement(%q) error = %v; want ErrInvalidPlacement", tc.placement, err)
			}
		})
	}
}

func TestFEN(t *testing.T) {
	if got, want := NewBoard(false).FEN(), StartPlacement+" w - - 0 1"; got != want {
		t.Errorf("FEN() = %s; want %s", got, want)
	}
}
