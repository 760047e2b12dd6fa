package board

import (
	"fmt"

	"github.com/go-logr/logr"
)

// BoardState classifies the contents of a board.
type BoardState uint8

const (
	StateEmpty BoardState = iota
	StateStandard
	StateArbitrary
)

func (s BoardState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateStandard:
		return "standard opening"
	case StateArbitrary:
		return "arbitrary"
	default:
		return fmt.Sprintf("BoardState(%d)", uint8(s))
	}
}

// Opening rank patterns, bit x set for file x.
const (
	pawnSetup   = 0b11111111
	rookSetup   = 0b10000001
	knightSetup = 0b01000010
	bishopSetup = 0b00100100
	kingSetup   = 0b00010000
	queenSetup  = 0b00001000
)

// Board holds one bitboard per piece kind, in display-grid space. When the
// board is flipped the grid is the 180 degree rotation of the logical squares.
//
// A Board is not safe for concurrent use.
type Board struct {
	masks   [NumKinds]Bitboard
	flipped bool
	state   BoardState
	log     logr.Logger
}

// NewBoard returns a board set up with the standard opening position.
func NewBoard(flipped bool) *Board {
	b := NewEmptyBoard()
	b.Reset(flipped)
	return b
}

// NewEmptyBoard returns a board with no pieces.
func NewEmptyBoard() *Board {
	return &Board{log: logr.Discard()}
}

func newBoardFromMasks(masks [NumKinds]Bitboard, flipped bool) *Board {
	b := &Board{masks: masks, flipped: flipped, log: logr.Discard()}
	b.state = classify(masks, flipped)
	return b
}

func classify(masks [NumKinds]Bitboard, flipped bool) BoardState {
	switch masks {
	case [NumKinds]Bitboard{}:
		return StateEmpty
	case openingMasks(flipped):
		return StateStandard
	default:
		return StateArbitrary
	}
}

// SetLogger sets the logger used for move rejection diagnostics.
func (b *Board) SetLogger(l logr.Logger) {
	b.log = l
}

// openingMasks returns the standard opening layout for an orientation.
// Unflipped, white occupies rows 0 and 1; flipped, every rank pattern is
// moved to the opposite row and mirrored, which swaps king and queen files.
func openingMasks(flipped bool) [NumKinds]Bitboard {
	whiteBack, whitePawns, blackPawns, blackBack := 0, 8, 48, 56
	king, queen := Bitboard(kingSetup), Bitboard(queenSetup)
	if flipped {
		whiteBack, whitePawns, blackPawns, blackBack = 56, 48, 8, 0
		king, queen = queen, king
	}

	var m [NumKinds]Bitboard
	m[WhitePawn] = pawnSetup << whitePawns
	m[WhiteKnight] = knightSetup << whiteBack
	m[WhiteBishop] = bishopSetup << whiteBack
	m[WhiteRook] = rookSetup << whiteBack
	m[WhiteQueen] = queen << whiteBack
	m[WhiteKing] = king << whiteBack

	m[BlackPawn] = pawnSetup << blackPawns
	m[BlackKnight] = knightSetup << blackBack
	m[BlackBishop] = bishopSetup << blackBack
	m[BlackRook] = rookSetup << blackBack
	m[BlackQueen] = queen << blackBack
	m[BlackKing] = king << blackBack
	return m
}

// Reset clears the board and sets up the standard opening position for the
// given orientation.
func (b *Board) Reset(flipped bool) {
	b.masks = openingMasks(flipped)
	b.flipped = flipped
	b.state = StateStandard
}

// Clear removes every piece, keeping the orientation.
func (b *Board) Clear() {
	b.masks = [NumKinds]Bitboard{}
	b.state = StateEmpty
}

// Flip toggles the board orientation. The standard opening is re-derived for
// the new orientation; any other position is rotated 180 degrees.
func (b *Board) Flip() {
	b.flipped = !b.flipped
	if b.state == StateStandard {
		b.masks = openingMasks(b.flipped)
		return
	}
	for i := range b.masks {
		b.masks[i] = b.masks[i].Rotate180()
	}
}

// Flipped reports the board orientation.
func (b *Board) Flipped() bool {
	return b.flipped
}

// State returns the board classification.
func (b *Board) State() BoardState {
	return b.state
}

// IsStandard reports whether the board holds the untouched opening position.
func (b *Board) IsStandard() bool {
	return b.state == StateStandard
}

// Mask returns the bitboard of a piece kind.
func (b *Board) Mask(k PieceKind) Bitboard {
	if k >= NoPiece {
		return Empty
	}
	return b.masks[k]
}

// Masks returns a copy of every bitboard, indexed by piece kind.
func (b *Board) Masks() [NumKinds]Bitboard {
	return b.masks
}

// Occupied returns the union of all bitboards.
func (b *Board) Occupied() Bitboard {
	var all Bitboard
	for _, m := range b.masks {
		all |= m
	}
	return all
}

// Clone returns an independent copy of the board sharing its logger.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// At returns the piece kind on a grid cell, or NoPiece.
func (b *Board) At(c Cell) PieceKind {
	bb := CellBB(c)
	for _, k := range AllPieceKinds {
		if b.masks[k]&bb != 0 {
			return k
		}
	}
	return NoPiece
}

// AtXY is At for raw grid indices.
func (b *Board) AtXY(x, y uint8) (PieceKind, error) {
	c, err := NewCell(x, y)
	if err != nil {
		return NoPiece, err
	}
	return b.At(c), nil
}

// PlacedPiece is a piece kind on a grid cell.
type PlacedPiece struct {
	Cell Cell
	Kind PieceKind
}

// Pieces returns every occupied cell in ascending grid index order.
// On a corrupt board a cell appears once per kind claiming it.
func (b *Board) Pieces() []PlacedPiece {
	var pieces []PlacedPiece
	for i := 0; i < 64; i++ {
		c := cellAt(i)
		for _, k := range AllPieceKinds {
			if b.masks[k].Has(c) {
				pieces = append(pieces, PlacedPiece{Cell: c, Kind: k})
			}
		}
	}
	return pieces
}

// IsValid reports whether no cell is claimed by more than one piece kind.
func (b *Board) IsValid() bool {
	var all Bitboard
	sum := 0
	for _, m := range b.masks {
		sum += m.PopCount()
		all |= m
	}
	return all.PopCount() == sum
}

// Validate returns a *CorruptBoardError naming the overlapping cells, or nil.
func (b *Board) Validate() error {
	var seen, dup Bitboard
	for _, m := range b.masks {
		dup |= seen & m
		seen |= m
	}
	if dup == 0 {
		return nil
	}
	return &CorruptBoardError{Overlaps: dup.Cells()}
}

// MoveWithHint moves a piece of the given kind from origin to target.
//
// The board is left unchanged and an error returned when the target is
// occupied (ErrTargetOccupied), the kind is not on the origin
// (ErrOriginMismatch) or the kind's shape predicate rejects the move
// (a *MoveError wrapping ErrIllegalShape). Captures are not supported.
func (b *Board) MoveWithHint(k PieceKind, origin, target Cell) error {
	if b.Occupied().Has(target) {
		b.log.V(1).Info("move ignored", "reason", "target occupied", "target", target.String())
		return ErrTargetOccupied
	}
	if k >= NoPiece || !b.masks[k].Has(origin) {
		b.log.V(1).Info("move ignored", "reason", "origin mismatch", "kind", k.String(), "origin", origin.String())
		return ErrOriginMismatch
	}

	o := FromCell(b.flipped, origin)
	t := FromCell(b.flipped, target)
	if !k.ShapeOK(o, t) {
		err := &MoveError{Kind: k, Origin: o, Target: t}
		b.log.Info("move rejected", "kind", k.String(), "origin", o.Algebraic(), "target", t.Algebraic())
		return err
	}

	b.masks[k] = b.masks[k].Clear(origin).Set(target)
	b.state = StateArbitrary
	return nil
}
