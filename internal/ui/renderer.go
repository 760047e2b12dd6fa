package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/drag"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{237, 214, 175, 255},
		DarkSquare:     color.RGBA{184, 135, 97, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 160},
		Background:     color.RGBA{40, 44, 52, 255},
	}
}

const (
	filesUp   = "abcdefgh"
	filesDown = "hgfedcba"
)

// Renderer draws the board, its labels and pieces.
type Renderer struct {
	geometry drag.Geometry
	sprites  *SpriteCache
	fonts    *Fonts
	theme    *Theme
}

// NewRenderer creates a renderer for the given geometry.
func NewRenderer(g drag.Geometry, sprites *SpriteCache, fonts *Fonts) *Renderer {
	return &Renderer{
		geometry: g,
		sprites:  sprites,
		fonts:    fonts,
		theme:    DefaultTheme(),
	}
}

// DrawBoard draws the squares. Grid cell (0, 0) is dark.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.geometry.CellSize)
	for y := uint8(0); y < 8; y++ {
		for x := uint8(0); x < 8; x++ {
			c := r.theme.LightSquare
			if (x+y)%2 == 0 {
				c = r.theme.DarkSquare
			}
			px, py := r.geometry.CellOrigin(board.MustCell(x, y))
			vector.DrawFilledRect(screen, float32(px), float32(py), size, size, c, false)
		}
	}
}

// DrawCoordinates labels files along the bottom row and ranks along the
// left column, following the orientation.
func (r *Renderer) DrawCoordinates(screen *ebiten.Image, flipped bool) {
	face := r.fonts.Label
	if face == nil {
		return
	}
	files := filesUp
	if flipped {
		files = filesDown
	}
	size := float64(r.geometry.CellSize)
	pad := size * 0.06

	for i := 0; i < 8; i++ {
		// Label color is the opposite square color.
		bottom := board.MustCell(uint8(i), 0)
		r.drawLabel(screen, files[i:i+1], bottom, float64(i+1)*size-pad, 8*size-pad, text.AlignEnd, text.AlignEnd)

		rank := byte('1' + i)
		if flipped {
			rank = byte('8' - i)
		}
		left := board.MustCell(0, uint8(i))
		r.drawLabel(screen, string(rank), left, pad, float64(7-i)*size+pad, text.AlignStart, text.AlignStart)
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, s string, on board.Cell, x, y float64, h, v text.Align) {
	c := r.theme.DarkSquare
	if (on.X()+on.Y())%2 == 0 {
		c = r.theme.LightSquare
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = h
	op.SecondaryAlign = v
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, r.fonts.Label, op)
}

// HighlightCell draws a translucent overlay on a cell.
func (r *Renderer) HighlightCell(screen *ebiten.Image, c board.Cell) {
	x, y := r.geometry.CellOrigin(c)
	size := float32(r.geometry.CellSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, r.theme.SelectedSquare, false)
}

// DrawPieces draws every piece except the one on skip, when skip is set.
// anims may be nil.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, skip *board.Cell, anims *AnimationManager) {
	for _, p := range b.Pieces() {
		if skip != nil && p.Cell == *skip {
			continue
		}
		x, y := r.geometry.SpriteOrigin(p.Cell)
		if anims != nil {
			dx, dy := anims.ShakeOffset(p.Cell)
			x += int(dx)
			y += int(dy)
		}
		r.sprites.DrawAt(screen, p.Kind, x, y)
	}
}

// DrawSelection draws the dragged piece clamped to the board.
func (r *Renderer) DrawSelection(screen *ebiten.Image, sel drag.Selection) {
	size := r.geometry.BoardSize()
	x, y, _ := sel.Rect(size, size)
	r.sprites.DrawAt(screen, sel.Kind, x, y)
}

// Geometry returns the pixel geometry.
func (r *Renderer) Geometry() drag.Geometry {
	return r.geometry
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
