// Package hal is the board boundary: the button pins, the panel behind an
// RGB565 framebuffer, the backlight, raw flash and a line logger. The host
// build simulates the board in a window or headless; the TinyGo build
// drives the real parts.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is an on/off output. The panel backlight is one.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by an app step function to stop the host runner
// normally.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is the frame in RAM. Drawing writes Buffer; Present pushes it
// to the panel.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display hands out the framebuffer, or nil without a panel.
type Display interface {
	Framebuffer() Framebuffer
}

// Flash is raw non-volatile memory addressed from 0, erased in blocks.
// Settings live at its start.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// HAL is everything the programs may touch.
type HAL interface {
	Logger() Logger
	Backlight() LED
	Display() Display
	GPIO() GPIO
	Flash() Flash
}
