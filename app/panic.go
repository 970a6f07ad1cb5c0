package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"drawbot/display"
	"drawbot/hal"
)

var (
	panicBG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panicFG = color.RGBA{A: 0xff}
)

// showPanic logs a recovered panic with its stack and paints it on screen.
func showPanic(h hal.HAL, v any, stack []byte) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("Drawbot panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				l.WriteLineString(line)
			}
		}
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return
	}
	fb := disp.Framebuffer()
	c := display.New(display.NewFramebuffer(fb))
	font := display.DefaultFont()

	lines := []string{"Drawbot panic:", fmt.Sprintf("%v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, strings.TrimSpace(line))
			}
		}
	}

	c.Fill(panicBG)
	cols := max(c.Width()/int(font.Width), 1)
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+int(font.Height) > c.Height() {
				_ = c.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.BitmapText(font, chunk, 0, y, panicFG, panicBG)
			y += int(font.Height)
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Display()
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
