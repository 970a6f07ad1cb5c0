package display

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is a monospace bitmap face with its character cell.
type Font struct {
	Face tinyfont.Fonter

	// Width and Height are the cell size in pixels. Offset is the baseline
	// distance from the top of the cell.
	Width, Height, Offset int16
}

// NewFont measures the cell width from the face.
func NewFont(face tinyfont.Fonter, height, offset int16) (Font, bool) {
	_, outboxWidth := tinyfont.LineWidth(face, "0")
	f := Font{
		Face:   face,
		Width:  int16(outboxWidth),
		Height: height,
		Offset: offset,
	}
	return f, f.Width > 0 && f.Height > 0
}

// DefaultFont is the UI font, proggy TinySZ 8pt.
func DefaultFont() Font {
	f, _ := NewFont(&proggy.TinySZ8pt7b, 10, 6)
	return f
}
