package board

import "testing"

func sq(s string) Coord {
	return MustAlgebraic(s)
}

func TestShapeOK(t *testing.T) {
	tests := []struct {
		name   string
		kind   PieceKind
		origin string
		target string
		want   bool
	}{
		{"knight 1-2", WhiteKnight, "a1", "b3", true},
		{"knight 2-1", BlackKnight, "a1", "c2", true},
		{"knight backwards", WhiteKnight, "e4", "d2", true},
		{"knight diagonal", WhiteKnight, "a1", "c3", false},
		{"knight straight", WhiteKnight, "a1", "a3", false},

		{"bishop diagonal", WhiteBishop, "c1", "h6", true},
		{"bishop anti-diagonal", BlackBishop, "f8", "a3", true},
		{"bishop straight", WhiteBishop, "c1", "c4", false},
		{"bishop off-diagonal", WhiteBishop, "c1", "e2", false},

		{"rook file", WhiteRook, "a1", "a6", true},
		{"rook rank", BlackRook, "h8", "b8", true},
		{"rook diagonal", WhiteRook, "a1", "b2", false},
		{"rook knight jump", WhiteRook, "a1", "b3", false},

		{"queen diagonal", WhiteQueen, "d1", "h5", true},
		{"queen file", BlackQueen, "d8", "d2", true},
		{"queen knight jump", WhiteQueen, "d1", "e3", false},

		{"king step", WhiteKing, "e1", "f2", true},
		{"king side step", BlackKing, "e8", "d8", true},
		{"king two squares", WhiteKing, "e1", "g1", false},

		{"white pawn single", WhitePawn, "e2", "e3", true},
		{"white pawn double", WhitePawn, "e2", "e4", true},
		{"white pawn triple", WhitePawn, "e2", "e5", false},
		{"white pawn backwards", WhitePawn, "e4", "e3", false},
		{"white pawn capture right", WhitePawn, "e4", "f5", true},
		{"white pawn capture left", WhitePawn, "e4", "d5", true},
		{"white pawn backward diagonal right", WhitePawn, "e4", "f3", false},
		{"white pawn backward diagonal left", WhitePawn, "e4", "d3", false},
		{"white pawn long diagonal", WhitePawn, "e2", "f4", false},
		{"white pawn sideways", WhitePawn, "e4", "f4", false},

		{"black pawn single", BlackPawn, "e7", "e6", true},
		{"black pawn double", BlackPawn, "e7", "e5", true},
		{"black pawn backwards", BlackPawn, "e5", "e6", false},
		{"black pawn capture right", BlackPawn, "e5", "f4", true},
		{"black pawn capture left", BlackPawn, "e5", "d4", true},
		{"black pawn backward diagonal", BlackPawn, "e5", "f6", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.kind.ShapeOK(sq(tc.origin), sq(tc.target)); got != tc.want {
				t.Errorf("%v.ShapeOK(%s, %s) = %t; want %t", tc.kind, tc.origin, tc.target, got, tc.want)
			}
		})
	}
}

func TestShapeOKGridCoordinates(t *testing.T) {
	origin, _ := FromGrid(false, 0, 0)
	knightOK, _ := FromGrid(false, 1, 2)
	knightBad, _ := FromGrid(false, 2, 2)
	if !WhiteKnight.ShapeOK(origin, knightOK) {
		t.Error("knight (0,0)->(1,2) should be legal")
	}
	if WhiteKnight.ShapeOK(origin, knightBad) {
		t.Error("knight (0,0)->(2,2) should be illegal")
	}

	diag, _ := FromGrid(false, 1, 1)
	file, _ := FromGrid(false, 0, 5)
	if WhiteRook.ShapeOK(origin, diag) {
		t.Error("rook (0,0)->(1,1) should be illegal")
	}
	if !WhiteRook.ShapeOK(origin, file) {
		t.Error("rook (0,0)->(0,5) should be legal")
	}
}

func TestShapeOKFlippedPawnDirection(t *testing.T) {
	// On a flipped board white pawns start on grid row 6 and advance toward
	// row 5 on screen, which is still increasing logical rank.
	origin, _ := FromGrid(true, 3, 6)
	target, _ := FromGrid(true, 3, 4)
	if origin.Algebraic() != "e2" || target.Algebraic() != "e4" {
		t.Fatalf("flipped grid names = %s, %s; want e2, e4", origin.Algebraic(), target.Algebraic())
	}
	if !WhitePawn.ShapeOK(origin, target) {
		t.Error("white pawn e2-e4 on a flipped board should be legal")
	}
	if BlackPawn.ShapeOK(origin, target) {
		t.Error("black pawn e2-e4 should be illegal")
	}
}

func TestShapeOKRejectsNullMove(t *testing.T) {
	for _, k := range AllPieceKinds {
		if k.ShapeOK(sq("d4"), sq("d4")) {
			t.Errorf("%v.ShapeOK(d4, d4) = true; want false", k)
		}
	}
	if NoPiece.ShapeOK(sq("d4"), sq("d5")) {
		t.Error("NoPiece.ShapeOK should be false")
	}
}
