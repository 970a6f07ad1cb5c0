//go:build !tinygo

package display

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawbot/hal"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func newCanvas(w, h int) (*Canvas, hal.Framebuffer) {
	fb := hal.NewMemoryFramebuffer(w, h)
	return New(NewFramebuffer(fb)), fb
}

func pixel(fb hal.Framebuffer, x, y int) uint16 {
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

func countPixels(fb hal.Framebuffer, want uint16) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if pixel(fb, x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestRGB565(t *testing.T) {
	assert.Equal(t, uint16(0xf800), RGB565(red))
	assert.Equal(t, uint16(0x001f), RGB565(blue))
	assert.Equal(t, uint16(0xffff), RGB565(white))
}

func TestCanvasSize(t *testing.T) {
	c, _ := newCanvas(240, 135)
	assert.Equal(t, 240, c.Width())
	assert.Equal(t, 135, c.Height())
}

func TestFillRectClips(t *testing.T) {
	c, fb := newCanvas(10, 10)
	c.FillRect(-2, 8, 5, 5, red)

	assert.Equal(t, 3*2, countPixels(fb, RGB565(red)))
	assert.Equal(t, RGB565(red), pixel(fb, 0, 9))
	assert.Equal(t, RGB565(red), pixel(fb, 2, 8))
	assert.Zero(t, pixel(fb, 3, 8))
}

func TestFillAndHLine(t *testing.T) {
	c, fb := newCanvas(8, 4)
	c.Fill(blue)
	assert.Equal(t, 32, countPixels(fb, RGB565(blue)))

	c.HLine(2, 3, 4, red)
	assert.Equal(t, 4, countPixels(fb, RGB565(red)))
	assert.Equal(t, RGB565(red), pixel(fb, 5, 3))
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int16
		want           int
	}{
		{"horizontal", 1, 1, 6, 1, 6},
		{"reversed horizontal", 6, 2, 1, 2, 6},
		{"vertical", 3, 0, 3, 7, 8},
		{"diagonal", 0, 0, 7, 7, 8},
		{"steep", 7, 0, 5, 7, 8},
		{"point", 4, 4, 4, 4, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, fb := newCanvas(8, 8)
			c.Line(tc.x0, tc.y0, tc.x1, tc.y1, red)
			assert.Equal(t, tc.want, countPixels(fb, RGB565(red)))
			assert.Equal(t, RGB565(red), pixel(fb, int(tc.x0), int(tc.y0)))
			assert.Equal(t, RGB565(red), pixel(fb, int(tc.x1), int(tc.y1)))
		})
	}
}

func TestLineOffScreenIsClipped(t *testing.T) {
	c, fb := newCanvas(4, 4)
	c.Line(-10, -10, 10, 10, red)
	assert.Equal(t, 4, countPixels(fb, RGB565(red)))
}

func TestBitmapTextPaintsCells(t *testing.T) {
	f := DefaultFont()
	require.Positive(t, f.Width)

	c, fb := newCanvas(240, 135)
	c.BitmapText(f, "AB", 10, 20, white, blue)

	bg := RGB565(blue)
	fg := RGB565(white)
	cells := 2 * int(f.Width) * int(f.Height)
	assert.GreaterOrEqual(t, countPixels(fb, bg)+countPixels(fb, fg), cells)
	assert.Positive(t, countPixels(fb, fg))
	assert.Positive(t, countPixels(fb, bg))
	assert.Zero(t, pixel(fb, 200, 100))
}

func TestNilFramebuffer(t *testing.T) {
	d := NewFramebuffer(nil)
	x, y := d.Size()
	assert.Zero(t, x)
	assert.Zero(t, y)
	d.SetPixel(0, 0, red)
	assert.NoError(t, d.FillRectangle(0, 0, 1, 1, red))
	assert.NoError(t, d.Display())
}
