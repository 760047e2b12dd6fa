// Package board implements the chess board state model using one bitboard
// per piece kind.
package board

import "fmt"

// Cell is an orientation-agnostic grid cell used for bitboard addressing.
// Both components are always in [0, 8).
type Cell struct {
	x, y uint8
}

// NewCell returns the cell (x, y) or an ErrInvalidCoordinate error.
func NewCell(x, y uint8) (Cell, error) {
	if x >= 8 || y >= 8 {
		return Cell{}, gridError(x, y)
	}
	return Cell{x: x, y: y}, nil
}

// MustCell is like NewCell but panics on invalid input.
// Intended for constants and tests.
func MustCell(x, y uint8) Cell {
	c, err := NewCell(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

func cellAt(i int) Cell {
	return Cell{x: uint8(i & 7), y: uint8(i >> 3)}
}

// X returns the column.
func (c Cell) X() uint8 { return c.x }

// Y returns the row, 0 being the bottom of the grid.
func (c Cell) Y() uint8 { return c.y }

// Index returns the bitboard index y*8+x.
func (c Cell) Index() int {
	return int(c.y)*8 + int(c.x)
}

// Rotate180 returns the cell seen from the other side of the board.
func (c Cell) Rotate180() Cell {
	return Cell{x: 7 - c.x, y: 7 - c.y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(x = %d, y = %d)", c.x, c.y)
}

// Coord is a notated board square. It keeps the logical square (file x, rank
// y, a1 = (0, 0)) together with its algebraic name and the orientation of the
// board it was built for.
//
// SetX, SetY and SetAlgebraic change one view only; call SyncAlgebraic or
// SyncXY afterwards to re-derive the other.
type Coord struct {
	algebraic string
	x, y      uint8
	flipped   bool
}

// FromGrid builds a coordinate from a display-grid cell. On a flipped board
// the grid is rotated 180 degrees, so grid (x, y) names square (7-x, 7-y).
func FromGrid(flipped bool, x, y uint8) (Coord, error) {
	if x >= 8 || y >= 8 {
		return Coord{}, gridError(x, y)
	}
	c := Coord{x: x, y: y, flipped: flipped}
	if flipped {
		c.x, c.y = 7-x, 7-y
	}
	c.SyncAlgebraic()
	return c, nil
}

// FromCell is FromGrid for an already validated cell.
func FromCell(flipped bool, cell Cell) Coord {
	c, _ := FromGrid(flipped, cell.x, cell.y)
	return c
}

// FromAlgebraic parses a two-character square name such as "e4".
// The file letter is case-insensitive and stored in lower case.
func FromAlgebraic(flipped bool, s string) (Coord, error) {
	if !validAlgebraic(s) {
		return Coord{}, algebraicError(s)
	}
	c := Coord{algebraic: normalize(s), flipped: flipped}
	if err := c.SyncXY(); err != nil {
		return Coord{}, err
	}
	return c, nil
}

// MustAlgebraic is like FromAlgebraic on an unflipped board but panics on
// invalid input.
func MustAlgebraic(s string) Coord {
	c, err := FromAlgebraic(false, s)
	if err != nil {
		panic(err)
	}
	return c
}

// X returns the file, 0 for 'a'.
func (c Coord) X() uint8 { return c.x }

// Y returns the rank, 0 for '1'.
func (c Coord) Y() uint8 { return c.y }

// Algebraic returns the square name.
func (c Coord) Algebraic() string { return c.algebraic }

// Flipped reports the board orientation the coordinate was built for.
func (c Coord) Flipped() bool { return c.flipped }

// Grid returns the display-grid cell of the square for its orientation.
func (c Coord) Grid() Cell {
	cell := Cell{x: c.x, y: c.y}
	if c.flipped {
		return cell.Rotate180()
	}
	return cell
}

// SetX sets the file without touching the algebraic name.
func (c *Coord) SetX(x uint8) error {
	if x >= 8 {
		return gridError(x, c.y)
	}
	c.x = x
	return nil
}

// SetY sets the rank without touching the algebraic name.
func (c *Coord) SetY(y uint8) error {
	if y >= 8 {
		return gridError(c.x, y)
	}
	c.y = y
	return nil
}

// SetAlgebraic sets the square name without touching x and y.
func (c *Coord) SetAlgebraic(s string) error {
	if !validAlgebraic(s) {
		return algebraicError(s)
	}
	c.algebraic = normalize(s)
	return nil
}

// SyncAlgebraic re-derives the algebraic name from x and y.
func (c *Coord) SyncAlgebraic() {
	c.algebraic = string([]byte{'a' + c.x, '1' + c.y})
}

// SyncXY re-derives x and y from the algebraic name.
func (c *Coord) SyncXY() error {
	if !validAlgebraic(c.algebraic) {
		return algebraicError(c.algebraic)
	}
	c.x = lower(c.algebraic[0]) - 'a'
	c.y = c.algebraic[1] - '1'
	return nil
}

// Equal compares the squares by algebraic name, ignoring orientation.
func (c Coord) Equal(o Coord) bool {
	return c.algebraic == o.algebraic
}

func (c Coord) String() string {
	return fmt.Sprintf("%s (x = %d, y = %d), board flipped ? %t", c.algebraic, c.x, c.y, c.flipped)
}

func validAlgebraic(s string) bool {
	if len(s) != 2 {
		return false
	}
	f, r := lower(s[0]), s[1]
	return 'a' <= f && f <= 'h' && '1' <= r && r <= '8'
}

func normalize(s string) string {
	return string([]byte{lower(s[0]), s[1]})
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
