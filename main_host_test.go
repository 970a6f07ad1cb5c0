//go:build !tinygo

package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawbot/display"
	"drawbot/hal"
	"drawbot/tftui"
	"drawbot/vectorfont"
)

func TestParseScript(t *testing.T) {
	pins, err := parseScript(" Up,center, 27 ,change")
	require.NoError(t, err)
	assert.Equal(t, []int{hal.PinUp, hal.PinCenter, 27, hal.PinZero}, pins)

	pins, err = parseScript("")
	require.NoError(t, err)
	assert.Empty(t, pins)

	_, err = parseScript("up,jump")
	assert.ErrorContains(t, err, `"jump"`)

	_, err = parseScript("99")
	assert.Error(t, err)
}

// barFont has one glyph, space, drawn as a vertical bar.
func barFont(t *testing.T) *vectorfont.Font {
	t.Helper()
	const bias = 0x52
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint16{1, 4}))
	buf.Write([]byte{2, bias - 2, bias + 2, bias, bias - 10, bias, bias + 10})

	f, err := vectorfont.Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return f
}

func TestRenderPreview(t *testing.T) {
	fb := hal.NewMemoryFramebuffer(hal.DisplayWidth, hal.DisplayHeight)
	f := barFont(t)

	require.NoError(t, renderPreview(fb, f, " ", 1))

	px := func(x, y int) uint16 {
		off := y*fb.StrideBytes() + 2*x
		b := fb.Buffer()
		return uint16(b[off]) | uint16(b[off+1])<<8
	}
	assert.Equal(t, display.RGB565(tftui.Blue), px(0, 0))

	// The glyph is 4 wide with the bar at its center column.
	x := hal.DisplayWidth/2 - 2 + 2
	assert.Equal(t, display.RGB565(tftui.White), px(x, hal.DisplayHeight/2))
	assert.Equal(t, display.RGB565(tftui.White), px(x, hal.DisplayHeight/2-10))

	assert.Error(t, renderPreview(fb, f, " ", 0))
}
