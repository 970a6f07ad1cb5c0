// Package tftui is a small character-cell UI for a color panel driven by a
// five way joystick and two extra buttons.
//
// The screen is a grid of Columns x Lines cells in the bitmap font. Every
// interaction (Menu, Select, Input, Form) is a blocking loop that redraws
// the panel and waits on the input for the next button code.
package tftui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"drawbot/button"
	"drawbot/display"
	"drawbot/hal"
	"drawbot/vectorfont"
)

// Input is the source of button codes. *button.JoyStick implements it.
type Input interface {
	// Read blocks until a button event or, when timeout > 0, until the
	// timeout passes and button.None is returned.
	Read(timeout time.Duration) button.Code
}

// Style is a foreground and background color pair.
type Style struct {
	FG, BG color.RGBA
}

// Inverse swaps the colors.
func (s Style) Inverse() Style { return Style{FG: s.BG, BG: s.FG} }

var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Blue  = color.RGBA{B: 0xff, A: 0xff}
	Red   = color.RGBA{R: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
)

// Options configure a UI. Zero Blink and a nil font face take the defaults.
type Options struct {
	Normal Style
	Active Style
	Header Style

	// Blink is the keyboard cursor blink period.
	Blink time.Duration

	Font display.Font
}

// DefaultOptions returns the white on blue theme with a red header.
func DefaultOptions() Options {
	return Options{
		Normal: Style{FG: White, BG: Blue},
		Active: Style{FG: Red, BG: White},
		Header: Style{FG: White, BG: Red},
		Blink:  500 * time.Millisecond,
		Font:   display.DefaultFont(),
	}
}

// UI draws on a canvas and reads one input. It is not safe for concurrent
// use.
type UI struct {
	canvas *display.Canvas
	input  Input
	log    hal.Logger
	opts   Options

	cols  int
	lines int
}

// New returns a UI drawing on canvas and reading from input.
func New(canvas *display.Canvas, input Input, opts Options, log hal.Logger) *UI {
	def := DefaultOptions()
	if opts.Blink <= 0 {
		opts.Blink = def.Blink
	}
	if opts.Font.Face == nil {
		opts.Font = def.Font
	}

	u := &UI{
		canvas: canvas,
		input:  input,
		log:    log,
		opts:   opts,
	}
	if w := int(opts.Font.Width); w > 0 {
		u.cols = canvas.Width() / w
	}
	if h := int(opts.Font.Height); h > 0 {
		u.lines = canvas.Height() / h
	}
	return u
}

func (u *UI) Options() Options { return u.opts }

// Canvas gives direct access for custom drawing.
func (u *UI) Canvas() *display.Canvas { return u.canvas }

// Columns is the number of character cells per line.
func (u *UI) Columns() int { return u.cols }

// Lines is the number of text lines on screen.
func (u *UI) Lines() int { return u.lines }

// Width is the screen width in pixels.
func (u *UI) Width() int { return u.canvas.Width() }

// Height is the screen height in pixels.
func (u *UI) Height() int { return u.canvas.Height() }

// Read presents the frame and waits for the next button code.
func (u *UI) Read(timeout time.Duration) button.Code {
	if err := u.canvas.Display(); err != nil {
		u.logf("tftui: present: %v", err)
	}
	return u.input.Read(timeout)
}

// Cls clears the screen and, if text is not empty, centers it on line.
func (u *UI) Cls(text string, line int) {
	u.canvas.Fill(u.opts.Normal.BG)
	if text != "" {
		u.Center(text, line, u.opts.Normal)
	}
}

// Center clears line and writes text centered on it.
func (u *UI) Center(text string, line int, s Style) {
	u.Writeln(center(text, u.cols), 0, line, s)
}

// Write paints the cells under text and writes it at col, line.
func (u *UI) Write(text string, col, line int, s Style) {
	f := u.opts.Font
	u.canvas.BitmapText(f, text, col*int(f.Width), line*int(f.Height), s.FG, s.BG)
}

// Writeln clears the whole line then writes text at col.
func (u *UI) Writeln(text string, col, line int, s Style) {
	f := u.opts.Font
	u.canvas.FillRect(0, line*int(f.Height), u.canvas.Width(), int(f.Height), s.BG)
	u.Write(text, col, line, s)
}

// Character writes a single character cell.
func (u *UI) Character(c rune, col, line int, s Style) {
	u.Write(string(c), col, line, s)
}

// Underline draws a line under width cells starting at col.
func (u *UI) Underline(col, line, width int, c color.RGBA) {
	f := u.opts.Font
	x := col * int(f.Width)
	w := width * int(f.Width)
	if x+w > u.canvas.Width() {
		w = u.canvas.Width() - x
	}
	u.canvas.HLine(x, (line+1)*int(f.Height)-1, w, c)
}

// Wait centers text on line and returns the next button pressed.
func (u *UI) Wait(text string, line int) button.Code {
	u.Center(text, line, u.opts.Normal)
	return u.Read(0)
}

// Size returns the pixel width of text in a stroke font.
func (u *UI) Size(f *vectorfont.Font, text string, scale int) (int, error) {
	return f.Size(text, scale)
}

// Draw renders text in a stroke font with its origin at x, y.
func (u *UI) Draw(f *vectorfont.Font, text string, x, y, scale int, c color.RGBA) error {
	return f.Draw(u.canvas, text, x, y, scale, c)
}

func (u *UI) logf(format string, args ...any) {
	if u.log == nil {
		return
	}
	u.log.WriteLineString(fmt.Sprintf(format, args...))
}

// center pads s to width, extra space going to the right.
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// pad left-justifies s in a field of width cells, truncating if needed.
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:max(width, 0)])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return ((a % n) + n) % n
}
