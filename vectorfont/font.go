// Package vectorfont reads stroke fonts (Hershey-style .fnt files) and
// renders them as line segments.
//
// File layout, all integers little-endian:
//
//	0..1   glyph count N
//	2..    offset table, one uint16 per character, entry for code c at
//	       (c-first+1)*2
//	glyph  stroke count K, left bearing, right bearing, then K (x, y)
//	       pairs; every coordinate byte is biased by 0x52
//
// Fonts with N > 96 address codes [0, N); smaller fonts start at space.
package vectorfont

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"path"
	"sort"
)

const (
	bias = 0x52

	// PenUp is the decoded x coordinate that starts a new sub-path.
	PenUp = -50

	// fullRangeThreshold is the largest count that still means a font
	// starting at space.
	fullRangeThreshold = 96
	asciiBase          = 0x20

	// Ext is the file extension of stroke fonts.
	Ext = ".fnt"
)

var (
	ErrShortFont = errors.New("vectorfont: truncated font")
	ErrBadOffset = errors.New("vectorfont: glyph offset out of range")
)

// Liner draws a straight line.
type Liner interface {
	Line(x0, y0, x1, y1 int16, c color.RGBA)
}

// Stroke is one glyph vertex.
type Stroke struct {
	X, Y  int
	PenUp bool
}

// Glyph is a decoded glyph record.
type Glyph struct {
	Left, Right int
	Strokes     []Stroke
}

// Advance is the unscaled horizontal advance.
func (g Glyph) Advance() int { return g.Right - g.Left }

// Font is a stroke font backed by a random-access resource. Glyphs are
// decoded on every call and never cached.
type Font struct {
	r     io.ReaderAt
	size  int64
	count int
	first int
}

// Parse reads the font header from r.
func Parse(r io.ReaderAt) (*Font, error) {
	var hdr [2]byte
	if err := readFull(r, hdr[:], 0); err != nil {
		return nil, err
	}
	f := &Font{r: r, size: -1, count: int(binary.LittleEndian.Uint16(hdr[:]))}
	if f.count <= fullRangeThreshold {
		f.first = asciiBase
	}
	if s, ok := r.(interface{ Size() int64 }); ok {
		f.size = s.Size()
	}
	return f, nil
}

// Open loads a font file from fsys.
func Open(fsys fs.FS, name string) (*Font, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("vectorfont: open %s: %w", name, err)
	}
	return Parse(bytes.NewReader(data))
}

// List returns the sorted names of the font files in dir.
func List(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("vectorfont: list %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != Ext {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Count is the glyph count from the header.
func (f *Font) Count() int { return f.count }

// Range returns the addressable character codes [first, last).
func (f *Font) Range() (first, last int) {
	return f.first, f.first + f.count
}

// Has reports whether c is addressable.
func (f *Font) Has(c rune) bool {
	first, last := f.Range()
	return int(c) >= first && int(c) < last
}

// Glyph decodes the glyph for c. ok is false when c is outside the font.
func (f *Font) Glyph(c rune) (g Glyph, ok bool, err error) {
	off, ok, err := f.glyphOffset(c)
	if !ok || err != nil {
		return Glyph{}, ok, err
	}

	var hdr [3]byte
	if err := f.readAt(hdr[:], off); err != nil {
		return Glyph{}, true, err
	}
	g.Left = int(hdr[1]) - bias
	g.Right = int(hdr[2]) - bias

	k := int(hdr[0])
	if k == 0 {
		return g, true, nil
	}
	raw := make([]byte, 2*k)
	if err := f.readAt(raw, off+3); err != nil {
		return Glyph{}, true, err
	}
	g.Strokes = make([]Stroke, k)
	for i := range g.Strokes {
		x := int(raw[2*i]) - bias
		y := int(raw[2*i+1]) - bias
		g.Strokes[i] = Stroke{X: x, Y: y, PenUp: x == PenUp}
	}
	return g, true, nil
}

// Size returns the width of text at scale. Characters outside the font add
// nothing.
func (f *Font) Size(text string, scale int) (int, error) {
	width := 0
	for _, c := range text {
		off, ok, err := f.glyphOffset(c)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		var hdr [3]byte
		if err := f.readAt(hdr[:], off); err != nil {
			return 0, err
		}
		left := int(hdr[1]) - bias
		right := int(hdr[2]) - bias
		width += (right - left) * scale
	}
	return width, nil
}

// Draw renders text with its left edge at x and baseline origin at y.
// Characters outside the font draw nothing and take no space.
func (f *Font) Draw(dst Liner, text string, x, y, scale int, c color.RGBA) error {
	pos := x
	for _, r := range text {
		g, ok, err := f.Glyph(r)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		penUp := true
		var fromX, fromY int
		for _, s := range g.Strokes {
			if s.PenUp {
				penUp = true
				continue
			}
			// The left bearing is applied unscaled.
			toX := pos + s.X*scale - g.Left
			toY := y + s.Y*scale
			if !penUp {
				dst.Line(int16(fromX), int16(fromY), int16(toX), int16(toY), c)
			}
			fromX, fromY = toX, toY
			penUp = false
		}
		pos += g.Advance() * scale
	}
	return nil
}

func (f *Font) glyphOffset(c rune) (int64, bool, error) {
	if !f.Has(c) {
		return 0, false, nil
	}
	slot := int64(int(c)-f.first+1) * 2
	var b [2]byte
	if err := f.readAt(b[:], slot); err != nil {
		return 0, true, err
	}
	off := int64(binary.LittleEndian.Uint16(b[:]))
	if off < 2 || (f.size >= 0 && off >= f.size) {
		return 0, true, fmt.Errorf("%w: char %#x offset %d", ErrBadOffset, c, off)
	}
	return off, true, nil
}

func (f *Font) readAt(p []byte, off int64) error {
	return readFull(f.r, p, off)
}

func readFull(r io.ReaderAt, p []byte, off int64) error {
	n, err := r.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return ErrShortFont
	}
	return fmt.Errorf("vectorfont: read at %d: %w", off, err)
}
