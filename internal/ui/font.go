package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const toastFontSize = 14.0

// Fonts holds the faces used for labels and toasts.
type Fonts struct {
	Label *text.GoTextFace
	Toast *text.GoTextFace
}

// LoadFonts loads the Go fonts. Labels scale with the square size.
func LoadFonts(squareSize int) (*Fonts, error) {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}

	return &Fonts{
		Label: &text.GoTextFace{Source: boldSource, Size: max(9, float64(squareSize)*0.18)},
		Toast: &text.GoTextFace{Source: regularSource, Size: toastFontSize},
	}, nil
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
