package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the piece placement field of the starting position FEN.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from a FEN piece placement field. The field
// always describes logical squares, rank 8 first; the board stores them in the
// grid of the requested orientation. Any trailing FEN fields are ignored.
func ParsePlacement(flipped bool, placement string) (*Board, error) {
	fields := strings.Fields(placement)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidPlacement)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidPlacement, len(ranks))
	}

	var masks [NumKinds]Bitboard
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		// Bytes, not runes: any non-ASCII byte fails the piece lookup.
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidPlacement, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			kind := KindFromChar(c)
			if kind == NoPiece {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidPlacement, rune(c))
			}
			cell := Cell{x: uint8(file), y: uint8(rank)}
			if flipped {
				cell = cell.Rotate180()
			}
			masks[kind] = masks[kind].Set(cell)
			file++
		}

		if file != 8 {
			return nil, fmt.Errorf("%w: invalid number of squares in rank %d: got %d", ErrInvalidPlacement, rank+1, file)
		}
	}

	return newBoardFromMasks(masks, flipped), nil
}

// Placement returns the FEN piece placement field of the board in logical
// orientation. A cell claimed by several kinds is written with the first kind
// in AllPieceKinds order.
func (b *Board) Placement() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			cell := Cell{x: uint8(file), y: uint8(rank)}
			if b.flipped {
				cell = cell.Rotate180()
			}
			kind := b.At(cell)
			if kind == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(kind.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// FEN returns a complete FEN string for the placement, with white to move and
// no castling or en passant information.
func (b *Board) FEN() string {
	return b.Placement() + " w - - 0 1"
}
