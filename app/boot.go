package app

import (
	"drawbot/display"
	"drawbot/hal"
	"drawbot/internal/buildinfo"
	"drawbot/tftui"
)

// bootScreen paints a splash with the build and msg before the UI exists.
func bootScreen(h hal.HAL, msg string) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + msg)
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return
	}

	c := display.New(display.NewFramebuffer(disp.Framebuffer()))
	font := display.DefaultFont()
	c.Fill(tftui.Black)
	c.BitmapText(font, "Drawbot "+buildinfo.Short(), 0, 0, tftui.White, tftui.Black)
	c.BitmapText(font, msg, 0, 2*int(font.Height), tftui.White, tftui.Black)
	_ = c.Display()
}
