package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrCorruptBoard      = errors.New("corrupt board state")
	ErrTargetOccupied    = errors.New("target square occupied")
	ErrOriginMismatch    = errors.New("piece kind not on origin square")
	ErrIllegalShape      = errors.New("illegal move shape")
	ErrInvalidPlacement  = errors.New("invalid piece placement")
)

// CoordError describes a coordinate that failed validation.
// Reasons names every offending axis or character.
type CoordError struct {
	Input   string
	Reasons []string
}

func (e *CoordError) Error() string {
	if len(e.Reasons) == 0 {
		return "invalid " + e.Input
	}
	return fmt.Sprintf("invalid %s: %s", e.Input, strings.Join(e.Reasons, ", "))
}

func (e *CoordError) Unwrap() error {
	return ErrInvalidCoordinate
}

func gridError(x, y uint8) *CoordError {
	e := &CoordError{Input: fmt.Sprintf("coord: (%d, %d)", x, y)}
	if x >= 8 {
		e.Reasons = append(e.Reasons, "x must be < 8")
	}
	if y >= 8 {
		e.Reasons = append(e.Reasons, "y must be < 8")
	}
	return e
}

func algebraicError(s string) *CoordError {
	e := &CoordError{Input: fmt.Sprintf("algebraic form: %q", s)}
	if len(s) != 2 {
		e.Reasons = append(e.Reasons, "must be exactly 2 characters")
		return e
	}
	if f := lower(s[0]); f < 'a' || f > 'h' {
		e.Reasons = append(e.Reasons, "first char should be a letter in [a, h]")
	}
	if r := s[1]; r < '1' || r > '8' {
		e.Reasons = append(e.Reasons, "second char should be a number in [1, 8]")
	}
	return e
}

// CorruptBoardError lists the cells claimed by more than one piece kind.
type CorruptBoardError struct {
	Overlaps []Cell
}

func (e *CorruptBoardError) Error() string {
	names := make([]string, len(e.Overlaps))
	for i, c := range e.Overlaps {
		names[i] = c.String()
	}
	return fmt.Sprintf("corrupt board state: overlapping pieces at %s", strings.Join(names, " "))
}

func (e *CorruptBoardError) Unwrap() error {
	return ErrCorruptBoard
}

// MoveError is returned when a piece kind's shape predicate rejects a move.
type MoveError struct {
	Kind   PieceKind
	Origin Coord
	Target Coord
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s %s to %s invalid", e.Kind, e.Origin.Algebraic(), e.Target.Algebraic())
}

func (e *MoveError) Unwrap() error {
	return ErrIllegalShape
}
