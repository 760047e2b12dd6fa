package drag

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/hailam/chessboard/internal/board"
)

var (
	ErrNoSelection = errors.New("no piece selected")
	ErrNotMoved    = errors.New("piece dropped on its own square")
	ErrOffBoard    = errors.New("piece dropped outside the board")
)

// Selection is a piece picked up by the pointer.
type Selection struct {
	Cell board.Cell
	Kind board.PieceKind

	// X and Y are the top-left pixel of the dragged sprite.
	X, Y int
	Size int

	// Moved is set once the pointer has left the origin cell.
	Moved bool

	offsetX, offsetY int
}

// Rect returns the sprite rectangle clamped to a w x h window.
func (s Selection) Rect(w, h int) (x, y, size int) {
	x, y = max(0, s.X), max(0, s.Y)
	if x+s.Size > w {
		x = w - s.Size
	}
	if y+s.Size > h {
		y = h - s.Size
	}
	return x, y, s.Size
}

// Controller tracks at most one selected piece on a board.
// It is not safe for concurrent use.
type Controller struct {
	board    *board.Board
	geometry Geometry
	selected *Selection
	log      logr.Logger
}

// NewController creates a controller for the given board.
func NewController(b *board.Board, g Geometry, log logr.Logger) *Controller {
	return &Controller{board: b, geometry: g, log: log}
}

// Geometry returns the pixel geometry in use.
func (c *Controller) Geometry() Geometry {
	return c.geometry
}

// SetGeometry changes the cell size. Any selection is cancelled.
func (c *Controller) SetGeometry(g Geometry) {
	c.geometry = g
	c.selected = nil
}

// HasSelected reports whether a piece is picked up.
func (c *Controller) HasSelected() bool {
	return c.selected != nil
}

// Selected returns the current selection.
func (c *Controller) Selected() (Selection, bool) {
	if c.selected == nil {
		return Selection{}, false
	}
	return *c.selected, true
}

// Select picks up the piece under pixel (px, py). It returns false and keeps
// no selection when the pixel is off the board or the cell is empty.
func (c *Controller) Select(px, py int) bool {
	c.selected = nil

	cell, ok := c.geometry.CellAt(px, py)
	if !ok {
		return false
	}
	kind := c.board.At(cell)
	if kind == board.NoPiece {
		return false
	}

	x, y := c.geometry.SpriteOrigin(cell)
	c.selected = &Selection{
		Cell:    cell,
		Kind:    kind,
		X:       x,
		Y:       y,
		Size:    c.geometry.PieceSize(),
		offsetX: px - x,
		offsetY: py - y,
	}
	c.log.V(1).Info("piece selected", "kind", kind.String(), "cell", cell.String())
	return true
}

// MovePointer drags the selected piece so it keeps its offset to the pointer.
// Negative coordinates are clamped to zero.
func (c *Controller) MovePointer(px, py int) {
	if c.selected == nil {
		return
	}
	px, py = max(px, 0), max(py, 0)

	c.selected.X = px - c.selected.offsetX
	c.selected.Y = py - c.selected.offsetY

	if cell, ok := c.geometry.CellAt(px, py); !ok || cell != c.selected.Cell {
		c.selected.Moved = true
	}
}

// Drop releases the selected piece at pixel (px, py) and applies the move
// through Board.MoveWithHint. The selection is always cleared. A board
// rejection is returned unchanged.
func (c *Controller) Drop(px, py int) error {
	sel := c.selected
	c.selected = nil
	if sel == nil {
		return ErrNoSelection
	}
	if !sel.Moved {
		c.log.V(1).Info("piece not moved", "cell", sel.Cell.String())
		return ErrNotMoved
	}

	target, ok := c.geometry.CellAt(px, py)
	if !ok {
		return ErrOffBoard
	}
	return c.board.MoveWithHint(sel.Kind, sel.Cell, target)
}

// Cancel drops the selection without moving anything.
func (c *Controller) Cancel() {
	c.selected = nil
}
