// Package ui implements the board viewer using Ebitengine.
package ui

import (
	"bytes"
	"image"

	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/ui/assets"
)

// SpriteCache rasterises each piece kind's SVG once, on first use.
type SpriteCache struct {
	pieces      map[board.PieceKind]*ebiten.Image
	loaded      map[board.PieceKind]bool
	size        int     // Display size
	renderScale float64 // Render at higher resolution for quality
	log         logr.Logger
}

// NewSpriteCache creates a cache for sprites displayed at size pixels.
func NewSpriteCache(size int, log logr.Logger) *SpriteCache {
	return &SpriteCache{
		pieces:      make(map[board.PieceKind]*ebiten.Image),
		loaded:      make(map[board.PieceKind]bool),
		size:        size,
		renderScale: 3.0,
		log:         log.WithName("sprites"),
	}
}

// Get returns the sprite for k, or nil if it could not be loaded. A failed
// load is logged once and not retried.
func (sc *SpriteCache) Get(k board.PieceKind) *ebiten.Image {
	if k >= board.NoPiece {
		return nil
	}
	if !sc.loaded[k] {
		sc.loaded[k] = true
		img, err := sc.load(k)
		if err != nil {
			sc.log.Error(err, "cannot load sprite", "kind", k.String())
		} else {
			sc.pieces[k] = img
		}
	}
	return sc.pieces[k]
}

func (sc *SpriteCache) load(k board.PieceKind) (*ebiten.Image, error) {
	data, err := assets.Piece(k)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	renderSize := int(float64(sc.size) * sc.renderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	return ebiten.NewImageFromImage(rgba), nil
}

// Preload loads every kind so that the first frame does not stall.
func (sc *SpriteCache) Preload() {
	for _, k := range board.AllPieceKinds {
		sc.Get(k)
	}
}

// DrawAt draws k with its top-left corner at (x, y).
func (sc *SpriteCache) DrawAt(screen *ebiten.Image, k board.PieceKind, x, y int) {
	sprite := sc.Get(k)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sc.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of sprites.
func (sc *SpriteCache) Size() int {
	return sc.size
}
