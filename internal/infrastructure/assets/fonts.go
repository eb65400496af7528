// Package assets loads the font bundle shared by every realized scene.
package assets

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts is the loaded font bundle.
// Scenes share it by reference and must treat it as read-only.
type Fonts struct {
	Main *text.GoTextFaceSource
}

// LoadFonts loads the main font from a TTF/OTF file in fsys
func LoadFonts(fsys fs.FS, path string) (*Fonts, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	main, err := parseFace(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	return &Fonts{Main: main}, nil
}

// Default returns a bundle built from the Go Regular font
func Default() (*Fonts, error) {
	main, err := parseFace(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default font: %w", err)
	}
	return &Fonts{Main: main}, nil
}

// Face returns a left-to-right face of the main font at the given size
func (f *Fonts) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{
		Source:    f.Main,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
}

func parseFace(data []byte) (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(data))
}
