package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit occupancy mask for one piece kind.
// Bit y*8+x is set when grid cell (x, y) is occupied.
type Bitboard uint64

// Empty is the mask with no cells set.
const Empty Bitboard = 0

// CellBB returns a bitboard with only the given cell set.
func CellBB(c Cell) Bitboard {
	return 1 << c.Index()
}

// Set returns b with the given cell set.
func (b Bitboard) Set(c Cell) Bitboard {
	return b | CellBB(c)
}

// Clear returns b with the given cell cleared.
func (b Bitboard) Clear(c Cell) Bitboard {
	return b &^ CellBB(c)
}

// Has reports whether the cell is set.
func (b Bitboard) Has(c Cell) bool {
	return b&CellBB(c) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Rotate180 maps every cell (x, y) to (7-x, 7-y).
//
// Index i becomes 63-i, which is a full bit reversal of the word. Reversing
// only the byte order would mirror the rows but leave each row's files in
// place.
func (b Bitboard) Rotate180() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

// ForEach calls f for each set cell in ascending index order.
func (b Bitboard) ForEach(f func(Cell)) {
	for b != 0 {
		i := bits.TrailingZeros64(uint64(b))
		b &= b - 1
		f(cellAt(i))
	}
}

// Cells returns all set cells in ascending index order.
func (b Bitboard) Cells() []Cell {
	cells := make([]Cell, 0, b.PopCount())
	b.ForEach(func(c Cell) {
		cells = append(cells, c)
	})
	return cells
}

// String returns a grid of the mask, top row first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			if b.Has(cellAt(y*8 + x)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if x < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
