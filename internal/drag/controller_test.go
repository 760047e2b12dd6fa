package drag

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"

	"github.com/hailam/chessboard/internal/board"
)

func TestGeometryCellAt(t *testing.T) {
	g := Geometry{CellSize: 80}
	tests := []struct {
		px, py int
		ok     bool
		x, y   uint8
	}{
		{0, 0, true, 0, 7},
		{639, 639, true, 7, 0},
		{330, 500, true, 4, 1},
		{79, 560, true, 0, 0},
		{640, 10, false, 0, 0},
		{10, 640, false, 0, 0},
		{-1, 10, false, 0, 0},
	}
	for _, tc := range tests {
		c, ok := g.CellAt(tc.px, tc.py)
		if ok != tc.ok {
			t.Errorf("CellAt(%d, %d) ok = %t; want %t", tc.px, tc.py, ok, tc.ok)
			continue
		}
		if ok && (c.X() != tc.x || c.Y() != tc.y) {
			t.Errorf("CellAt(%d, %d) = %v; want (%d, %d)", tc.px, tc.py, c, tc.x, tc.y)
		}
	}

	if _, ok := (Geometry{}).CellAt(0, 0); ok {
		t.Error("zero geometry should not map pixels")
	}
}

func TestGeometryOrigins(t *testing.T) {
	g := Geometry{CellSize: 80}
	c := board.MustCell(2, 0)
	if x, y := g.CellOrigin(c); x != 160 || y != 560 {
		t.Errorf("CellOrigin(2, 0) = (%d, %d); want (160, 560)", x, y)
	}
	if x, y := g.SpriteOrigin(c); x != 168 || y != 568 {
		t.Errorf("SpriteOrigin(2, 0) = (%d, %d); want (168, 568)", x, y)
	}
	if g.PieceSize() != 64 {
		t.Errorf("PieceSize() = %d; want 64", g.PieceSize())
	}
	if g.BoardSize() != 640 {
		t.Errorf("BoardSize() = %d; want 640", g.BoardSize())
	}
}

func newController(b *board.Board) *Controller {
	return NewController(b, Geometry{CellSize: 80}, logr.Discard())
}

func TestDragMovesPiece(t *testing.T) {
	b := board.NewBoard(false)
	c := newController(b)

	if !c.Select(330, 500) {
		t.Fatal("Select on e2 returned false")
	}
	sel, ok := c.Selected()
	if !ok || sel.Kind != board.WhitePawn {
		t.Fatalf("Selected() = %+v, %t; want white pawn", sel, ok)
	}
	if sel.X != 328 || sel.Y != 488 || sel.Size != 64 {
		t.Errorf("sprite rect = (%d, %d, %d); want (328, 488, 64)", sel.X, sel.Y, sel.Size)
	}

	c.MovePointer(330, 340)
	sel, _ = c.Selected()
	if !sel.Moved {
		t.Error("Moved = false after leaving the origin cell")
	}
	if sel.X != 328 || sel.Y != 328 {
		t.Errorf("dragged sprite at (%d, %d); want (328, 328)", sel.X, sel.Y)
	}

	if err := c.Drop(330, 340); err != nil {
		t.Fatalf("Drop error: %v", err)
	}
	if c.HasSelected() {
		t.Error("selection kept after Drop")
	}
	if got := b.At(board.MustCell(4, 3)); got != board.WhitePawn {
		t.Errorf("At(4, 3) = %v; want white pawn", got)
	}
}

func TestSelectEmptyCell(t *testing.T) {
	c := newController(board.NewBoard(false))
	if c.Select(330, 300) {
		t.Error("Select on an empty cell returned true")
	}
	if c.Select(700, 10) {
		t.Error("Select off the board returned true")
	}
	if c.HasSelected() {
		t.Error("HasSelected() = true")
	}
}

func TestDropNotMoved(t *testing.T) {
	b := board.NewBoard(false)
	c := newController(b)
	c.Select(330, 500)
	c.MovePointer(335, 505)

	if err := c.Drop(335, 505); !errors.Is(err, ErrNotMoved) {
		t.Errorf("Drop error = %v; want ErrNotMoved", err)
	}
	if !b.IsStandard() {
		t.Error("board changed by an unmoved drop")
	}
}

func TestDropReturnsBoardRejection(t *testing.T) {
	b := board.NewBoard(false)
	c := newController(b)

	// Knight b1 dropped on b3 is not a knight move.
	c.Select(100, 600)
	c.MovePointer(100, 420)
	err := c.Drop(100, 420)
	if !errors.Is(err, board.ErrIllegalShape) {
		t.Errorf("Drop error = %v; want ErrIllegalShape", err)
	}
	if !b.IsStandard() {
		t.Error("board changed by a rejected drop")
	}
}

func TestDropOffBoard(t *testing.T) {
	c := newController(board.NewBoard(false))
	c.Select(330, 500)
	c.MovePointer(900, 500)
	if err := c.Drop(900, 500); !errors.Is(err, ErrOffBoard) {
		t.Errorf("Drop error = %v; want ErrOffBoard", err)
	}
	if err := c.Drop(10, 10); !errors.Is(err, ErrNoSelection) {
		t.Errorf("second Drop error = %v; want ErrNoSelection", err)
	}
}

func TestMovePointerClamps(t *testing.T) {
	c := newController(board.NewBoard(false))
	c.Select(10, 570)
	c.MovePointer(-50, -20)
	sel, _ := c.Selected()
	if sel.X != -sel.offsetX || sel.Y != -sel.offsetY {
		t.Errorf("sprite at (%d, %d); want pointer clamped to (0, 0)", sel.X, sel.Y)
	}
	if x, y, _ := sel.Rect(640, 640); x != 0 || y != 0 {
		t.Errorf("Rect = (%d, %d); want (0, 0)", x, y)
	}

	c.MovePointer(2000, 2000)
	sel, _ = c.Selected()
	if x, y, size := sel.Rect(640, 640); x != 640-size || y != 640-size {
		t.Errorf("Rect = (%d, %d); want clamped to (%d, %d)", x, y, 640-size, 640-size)
	}
}

func TestDragFlippedBoard(t *testing.T) {
	b := board.NewBoard(true)
	c := newController(b)

	// On a flipped board e2 is grid (3, 6): screen column 3, second row
	// from the top.
	if !c.Select(250, 100) {
		t.Fatal("Select on flipped e2 returned false")
	}
	c.MovePointer(250, 260)
	if err := c.Drop(250, 260); err != nil {
		t.Fatalf("Drop error: %v", err)
	}
	if got := b.Placement(); got != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR" {
		t.Errorf("Placement() = %s", got)
	}
}

func TestSetGeometryCancels(t *testing.T) {
	c := newController(board.NewBoard(false))
	c.Select(330, 500)
	c.SetGeometry(Geometry{CellSize: 40})
	if c.HasSelected() {
		t.Error("SetGeometry kept the selection")
	}
	if c.Geometry().CellSize != 40 {
		t.Errorf("CellSize = %d; want 40", c.Geometry().CellSize)
	}
	c.Select(10, 10)
	c.Cancel()
	if c.HasSelected() {
		t.Error("Cancel kept the selection")
	}
}
