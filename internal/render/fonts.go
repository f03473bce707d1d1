package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontRegular *opentype.Font
	fontOnce    sync.Once
	fontErr     error
)

func loadFont() {
	fontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse Go Regular: %w", err)
			return
		}
		fontRegular = f
	})
}

// newFace creates a face at a point size for the given output DPI,
// matching how plot text scales with figure resolution.
func newFace(points float64, dpi int) (font.Face, error) {
	loadFont()
	if fontErr != nil {
		return nil, fontErr
	}
	face, err := opentype.NewFace(fontRegular, &opentype.FaceOptions{
		Size:    points,
		DPI:     float64(dpi),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %gpt face: %w", points, err)
	}
	return face, nil
}
