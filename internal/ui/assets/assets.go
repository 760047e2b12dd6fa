// Package assets embeds the piece artwork.
package assets

import (
	"embed"
	"path"

	"github.com/hailam/chessboard/internal/board"
)

//go:embed pieces/*/*.svg
var pieces embed.FS

// Piece returns the SVG source for k.
func Piece(k board.PieceKind) ([]byte, error) {
	return pieces.ReadFile(path.Join("pieces", k.SpritePath()))
}
