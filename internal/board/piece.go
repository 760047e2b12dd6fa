package board

import "path"

// Color represents the color of a piece.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "nocolor"
	}
}

// Role is the colorless kind of a chess piece.
type Role uint8

const (
	Pawn Role = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoRole Role = 6
)

var roleNames = [7]string{"pawn", "knight", "bishop", "rook", "queen", "king", "none"}

// Algebraic letters, empty for the pawn.
var roleLetters = [7]string{"", "n", "b", "r", "q", "k", ""}

// String returns the role name.
func (r Role) String() string {
	if r > NoRole {
		return roleNames[NoRole]
	}
	return roleNames[r]
}

// PieceKind is one of the twelve role and color combinations.
// Encoded as: role + color*6.
type PieceKind uint8

const (
	WhitePawn   PieceKind = PieceKind(Pawn) + PieceKind(White)*6
	WhiteKnight PieceKind = PieceKind(Knight) + PieceKind(White)*6
	WhiteBishop PieceKind = PieceKind(Bishop) + PieceKind(White)*6
	WhiteRook   PieceKind = PieceKind(Rook) + PieceKind(White)*6
	WhiteQueen  PieceKind = PieceKind(Queen) + PieceKind(White)*6
	WhiteKing   PieceKind = PieceKind(King) + PieceKind(White)*6
	BlackPawn   PieceKind = PieceKind(Pawn) + PieceKind(Black)*6
	BlackKnight PieceKind = PieceKind(Knight) + PieceKind(Black)*6
	BlackBishop PieceKind = PieceKind(Bishop) + PieceKind(Black)*6
	BlackRook   PieceKind = PieceKind(Rook) + PieceKind(Black)*6
	BlackQueen  PieceKind = PieceKind(Queen) + PieceKind(Black)*6
	BlackKing   PieceKind = PieceKind(King) + PieceKind(Black)*6
	NoPiece     PieceKind = 12
)

// NumKinds is the number of piece kinds.
const NumKinds = 12

// AllPieceKinds lists every piece kind in a fixed order.
var AllPieceKinds = [NumKinds]PieceKind{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// NewPieceKind combines a role and a color.
func NewPieceKind(r Role, c Color) PieceKind {
	if r >= NoRole || c >= NoColor {
		return NoPiece
	}
	return PieceKind(r) + PieceKind(c)*6
}

// Role returns the colorless role of the piece.
func (k PieceKind) Role() Role {
	if k >= NoPiece {
		return NoRole
	}
	return Role(k % 6)
}

// Color returns the color of the piece.
func (k PieceKind) Color() Color {
	if k >= NoPiece {
		return NoColor
	}
	return Color(k / 6)
}

// IsWhite reports whether the piece is white.
func (k PieceKind) IsWhite() bool {
	return k.Color() == White
}

// Name returns the role name, e.g. "knight".
func (k PieceKind) Name() string {
	return k.Role().String()
}

// Algebraic returns the algebraic letter of the role, empty for pawns.
func (k PieceKind) Algebraic() string {
	return roleLetters[k.Role()]
}

// Char returns the FEN character: upper case for white, lower case for black.
func (k PieceKind) Char() byte {
	if k >= NoPiece {
		return ' '
	}
	return "PNBRQKpnbrqk"[k]
}

// SpritePath returns the sprite location relative to the pieces asset root,
// e.g. "light/knight.svg" or "dark/pawn.svg".
func (k PieceKind) SpritePath() string {
	shade := "dark"
	if k.IsWhite() {
		shade = "light"
	}
	return path.Join(shade, k.Name()+".svg")
}

// String returns e.g. "white knight".
func (k PieceKind) String() string {
	if k >= NoPiece {
		return "no piece"
	}
	return k.Color().String() + " " + k.Name()
}

// KindFromChar converts a FEN character to a piece kind.
func KindFromChar(c byte) PieceKind {
	for i := 0; i < NumKinds; i++ {
		if "PNBRQKpnbrqk"[i] == c {
			return PieceKind(i)
		}
	}
	return NoPiece
}
