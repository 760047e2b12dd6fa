package board

import "golang.org/x/exp/constraints"

// ShapeOK reports whether origin to target is a geometrically legal move
// pattern for the piece kind. Occupancy, obstruction and king safety are not
// considered.
func (k PieceKind) ShapeOK(origin, target Coord) bool {
	dx := int(target.X()) - int(origin.X())
	dy := int(target.Y()) - int(origin.Y())
	if dx == 0 && dy == 0 {
		return false
	}

	switch k.Role() {
	case Pawn:
		return pawnShape(k.Color(), dx, dy)
	case Knight:
		return knightShape(dx, dy)
	case Bishop:
		return bishopShape(dx, dy)
	case Rook:
		return rookShape(dx, dy)
	case Queen:
		return bishopShape(dx, dy) || rookShape(dx, dy)
	case King:
		return kingShape(dx, dy)
	default:
		return false
	}
}

// pawnShape accepts a forward step of one or two ranks on the same file, or
// a single forward diagonal step. White moves toward increasing y.
func pawnShape(c Color, dx, dy int) bool {
	forward := 1
	if c == Black {
		forward = -1
	}
	switch abs(dx) {
	case 0:
		return dy == forward || dy == 2*forward
	case 1:
		return dy == forward
	default:
		return false
	}
}

func knightShape(dx, dy int) bool {
	ax, ay := abs(dx), abs(dy)
	return (ax == 1 && ay == 2) || (ax == 2 && ay == 1)
}

func bishopShape(dx, dy int) bool {
	return dx != 0 && abs(dx) == abs(dy)
}

func rookShape(dx, dy int) bool {
	return (dx == 0) != (dy == 0)
}

func kingShape(dx, dy int) bool {
	return abs(dx) <= 1 && abs(dy) <= 1
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
