// Package display draws UI primitives on a TinyGo displayer.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer is a drivers.Displayer that can also fill rectangles quickly.
// Both the st7789 driver and Framebuffer satisfy it.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Canvas wraps a Displayer with the drawing calls the UI needs.
type Canvas struct {
	d Displayer
}

// New wraps d.
func New(d Displayer) *Canvas {
	return &Canvas{d: d}
}

// Width is the screen width in pixels.
func (c *Canvas) Width() int {
	w, _ := c.d.Size()
	return int(w)
}

// Height is the screen height in pixels.
func (c *Canvas) Height() int {
	_, h := c.d.Size()
	return int(h)
}

// Fill paints the whole screen.
func (c *Canvas) Fill(col color.RGBA) {
	w, h := c.d.Size()
	_ = c.d.FillRectangle(0, 0, w, h, col)
}

// FillRect paints a w by h rectangle; empty rectangles draw nothing.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	_ = c.d.FillRectangle(int16(x), int16(y), int16(w), int16(h), col)
}

// HLine draws a one pixel high line w pixels wide.
func (c *Canvas) HLine(x, y, w int, col color.RGBA) {
	c.FillRect(x, y, w, 1, col)
}

// Line draws a one pixel wide line with Bresenham's algorithm. Pixels off
// screen are left to the displayer to clip.
func (c *Canvas) Line(x0, y0, x1, y1 int16, col color.RGBA) {
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		c.HLine(int(x0), int(y0), int(x1-x0)+1, col)
		return
	}

	dx := abs16(x1 - x0)
	dy := -abs16(y1 - y0)
	sx, sy := int16(1), int16(1)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.d.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// BitmapText paints the text cells with bg, then draws s in fg. (x, y) is the
// top-left corner of the first cell.
func (c *Canvas) BitmapText(f Font, s string, x, y int, fg, bg color.RGBA) {
	if s == "" {
		return
	}
	c.FillRect(x, y, int(f.Width)*len([]rune(s)), int(f.Height), bg)
	tinyfont.WriteLine(c.d, f.Face, int16(x), int16(y)+f.Offset, s, fg)
}

// Display flushes buffered drawing to the panel.
func (c *Canvas) Display() error {
	return c.d.Display()
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
