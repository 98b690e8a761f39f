// pkg/render/font.go
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace загружает встроенный шрифт Go Regular нужного размера.
func LoadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Fonts — набор шрифтов, используемых экранами игры.
type Fonts struct {
	Title font.Face
	Label font.Face
}

// LoadFonts загружает заголовочный и обычный шрифты.
func LoadFonts(titleSize, labelSize float64) (*Fonts, error) {
	title, err := LoadFace(titleSize)
	if err != nil {
		return nil, err
	}
	label, err := LoadFace(labelSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{Title: title, Label: label}, nil
}
