package board

import (
	"fmt"
	"strings"
)

// Dump renders the board as text for diagnostics: every kind's own grid, or
// a single merged grid.
func (b *Board) Dump(merged bool) string {
	var sb strings.Builder
	if b.IsValid() {
		sb.WriteString("Board is valid\n")
	} else {
		sb.WriteString("Board is NOT valid\n")
	}

	if merged {
		sb.WriteString(b.DumpMerged())
		return sb.String()
	}
	for _, k := range AllPieceKinds {
		sb.WriteString(b.DumpKind(k))
	}
	return sb.String()
}

// DumpKind renders one kind's bitboard, top row first, with the kind's FEN
// character on occupied cells and '_' elsewhere.
func (b *Board) DumpKind(k PieceKind) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board with %s\n", k)

	mask := b.Mask(k)
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			if mask.Has(cellAt(y*8 + x)) {
				sb.WriteByte(k.Char())
			} else {
				sb.WriteByte('_')
			}
			if x < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DumpMerged renders all kinds in one grid, top row first. A cell claimed by
// several kinds lists all of them separated by commas; empty cells are '.'.
func (b *Board) DumpMerged() string {
	var grid [8][8]string
	widest := 1

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := cellAt(y*8 + x)
			var names []string
			for _, k := range AllPieceKinds {
				if b.masks[k].Has(c) {
					names = append(names, string(k.Char()))
				}
			}
			s := "."
			if len(names) > 0 {
				s = strings.Join(names, ",")
			}
			grid[7-y][x] = s
			widest = max(widest, len(s))
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		for x, s := range row {
			pad := widest - len(s)
			sb.WriteString(strings.Repeat(" ", pad/2))
			sb.WriteString(s)
			sb.WriteString(strings.Repeat(" ", pad-pad/2))
			if x < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
