package board

import "testing"

func TestPieceKindIdentity(t *testing.T) {
	tests := []struct {
		kind      PieceKind
		name      string
		white     bool
		algebraic string
		sprite    string
		char      byte
	}{
		{WhitePawn, "pawn", true, "", "light/pawn.svg", 'P'},
		{WhiteKnight, "knight", true, "n", "light/knight.svg", 'N'},
		{WhiteBishop, "bishop", true, "b", "light/bishop.svg", 'B'},
		{WhiteRook, "rook", true, "r", "light/rook.svg", 'R'},
		{WhiteQueen, "queen", true, "q", "light/queen.svg", 'Q'},
		{WhiteKing, "king", true, "k", "light/king.svg", 'K'},
		{BlackPawn, "pawn", false, "", "dark/pawn.svg", 'p'},
		{BlackKnight, "knight", false, "n", "dark/knight.svg", 'n'},
		{BlackBishop, "bishop", false, "b", "dark/bishop.svg", 'b'},
		{BlackRook, "rook", false, "r", "dark/rook.svg", 'r'},
		{BlackQueen, "queen", false, "q", "dark/queen.svg", 'q'},
		{BlackKing, "king", false, "k", "dark/king.svg", 'k'},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Name(); got != tc.name {
				t.Errorf("Name() = %q; want %q", got, tc.name)
			}
			if got := tc.kind.IsWhite(); got != tc.white {
				t.Errorf("IsWhite() = %t; want %t", got, tc.white)
			}
			if got := tc.kind.Algebraic(); got != tc.algebraic {
				t.Errorf("Algebraic() = %q; want %q", got, tc.algebraic)
			}
			if got := tc.kind.SpritePath(); got != tc.sprite {
				t.Errorf("SpritePath() = %q; want %q", got, tc.sprite)
			}
			if got := tc.kind.Char(); got != tc.char {
				t.Errorf("Char() = %c; want %c", got, tc.char)
			}
			if got := KindFromChar(tc.char); got != tc.kind {
				t.Errorf("KindFromChar(%c) = %v; want %v", tc.char, got, tc.kind)
			}
			if got := NewPieceKind(tc.kind.Role(), tc.kind.Color()); got != tc.kind {
				t.Errorf("NewPieceKind(%v, %v) = %v; want %v", tc.kind.Role(), tc.kind.Color(), got, tc.kind)
			}
		})
	}
}

func TestAllPieceKindsDistinct(t *testing.T) {
	seen := make(map[PieceKind]bool)
	for _, k := range AllPieceKinds {
		if seen[k] {
			t.Errorf("%v listed twice", k)
		}
		seen[k] = true
	}
	if len(seen) != NumKinds {
		t.Errorf("got %d distinct kinds; want %d", len(seen), NumKinds)
	}
	if AllPieceKinds[0] != WhitePawn || AllPieceKinds[NumKinds-1] != BlackKing {
		t.Errorf("AllPieceKinds order = %v", AllPieceKinds)
	}
}

func TestNoPiece(t *testing.T) {
	if NewPieceKind(NoRole, White) != NoPiece {
		t.Error("NewPieceKind(NoRole, White) should be NoPiece")
	}
	if KindFromChar('x') != NoPiece {
		t.Error("KindFromChar('x') should be NoPiece")
	}
	if NoPiece.Color() != NoColor || NoPiece.Role() != NoRole {
		t.Errorf("NoPiece = %v %v", NoPiece.Color(), NoPiece.Role())
	}
}
