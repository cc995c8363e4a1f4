package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the embedded monospace font used for HUD text
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.monoFontSource = src
	return nil
}

// getMonoFontFace returns the cached HUD font face
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.monoFontSource == nil {
		return nil
	}
	if e.monoFace == nil {
		e.monoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   hudFontSize,
		}
	}
	return e.monoFace
}
