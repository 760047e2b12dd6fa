// Package drag implements piece selection and drag-and-drop on top of a
// board, translating pointer pixels into grid cells.
package drag

import "github.com/hailam/chessboard/internal/board"

// Geometry converts between pixels and grid cells for a square board whose
// top-left corner is at (0, 0). Grid row 0 is drawn at the bottom.
type Geometry struct {
	CellSize int
}

// BoardSize returns the board edge length in pixels.
func (g Geometry) BoardSize() int {
	return 8 * g.CellSize
}

// CellAt returns the grid cell under pixel (px, py).
func (g Geometry) CellAt(px, py int) (board.Cell, bool) {
	if g.CellSize <= 0 || px < 0 || py < 0 || px >= g.BoardSize() || py >= g.BoardSize() {
		return board.Cell{}, false
	}
	c, err := board.NewCell(uint8(px/g.CellSize), uint8(7-py/g.CellSize))
	if err != nil {
		return board.Cell{}, false
	}
	return c, true
}

// CellOrigin returns the top-left pixel of a cell.
func (g Geometry) CellOrigin(c board.Cell) (int, int) {
	return int(c.X()) * g.CellSize, (7 - int(c.Y())) * g.CellSize
}

// PieceSize returns the sprite edge length, 80% of a cell.
func (g Geometry) PieceSize() int {
	return g.CellSize * 8 / 10
}

// SpriteOrigin returns the top-left pixel of a piece sprite drawn centered in
// its cell.
func (g Geometry) SpriteOrigin(c board.Cell) (int, int) {
	x, y := g.CellOrigin(c)
	inset := g.CellSize / 10
	return x + inset, y + inset
}
