//go:build !tinygo

package tftui

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawbot/button"
)

func TestKeyboardCursorStaysInRow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, layouts := range [][]Layout{Alnum, Numeric} {
		k := newKeyboard(layouts, 16, "")
		for step := 0; step < 2000; step++ {
			switch rng.Intn(6) {
			case 0:
				k.move(k.row-1, k.col)
			case 1:
				k.move(k.row+1, k.col)
			case 2:
				k.move(k.row, k.col-1)
			case 3:
				k.move(k.row, k.col+1)
			case 4:
				k.cycle(1)
			case 5:
				k.cycle(-1)
			}
			require.Less(t, k.row, len(k.rows()))
			require.GreaterOrEqual(t, k.col, 0)
			require.Less(t, k.col, len(k.keys(k.row)), "step %d", step)
		}
	}
}

func TestKeyboardRowChangeReclampsColumn(t *testing.T) {
	k := newKeyboard(Alnum, 8, "")

	k.move(0, 9)
	assert.Equal(t, 'P', k.key())

	// Row 1 has nine keys, so column nine wraps to the start.
	k.move(1, k.col)
	assert.Equal(t, 'A', k.key())

	k.move(2, 6)
	assert.Equal(t, 'M', k.key())
	k.move(3, k.col)
	assert.Equal(t, rune(KeyAccept), k.key())

	k.move(0, -1)
	assert.Equal(t, 'P', k.key())
}

func TestKeyboardCycle(t *testing.T) {
	k := newKeyboard(Alnum, 8, "")
	k.cycle(-1)
	assert.Equal(t, 3, k.layout)
	assert.Equal(t, '+', k.key())

	k.cycle(1)
	k.move(0, 9)
	assert.Equal(t, 'P', k.key())
	k.cycle(-1)
	assert.Equal(t, 3, k.layout)
	assert.Equal(t, ';', k.key(), "a column past a shorter row lands on its last key")
}

func TestKeyboardPress(t *testing.T) {
	k := newKeyboard(Numeric, 2, "")
	for i := 0; i < 3; i++ {
		k.press()
	}
	assert.Equal(t, "11", string(k.text), "input past capacity is dropped")

	k.move(3, 1)
	accept, changed := k.press()
	assert.False(t, accept)
	assert.True(t, changed)
	assert.Equal(t, "1", string(k.text))

	k.press()
	accept, changed = k.press()
	assert.False(t, accept)
	assert.False(t, changed)
	assert.Empty(t, k.text)

	k.move(3, 2)
	accept, _ = k.press()
	assert.True(t, accept)
}

func TestNewKeyboardKeepsLongValue(t *testing.T) {
	k := newKeyboard(Alnum, 3, "abcdef")
	assert.Equal(t, "abcdef", string(k.text))

	accept, changed := k.press()
	assert.False(t, accept)
	assert.False(t, changed, "a full buffer refuses more text")
	assert.Equal(t, "abcdef", string(k.text))
}

func TestInputNegativeMaxLen(t *testing.T) {
	h := newHarness(t, button.Center, button.Enter)
	code, text := h.ui.Input("Name", -1, "", Alnum, "")
	assert.Equal(t, button.Enter, code)
	assert.Empty(t, text)
	h.done(t)
}

func TestInputAcceptKey(t *testing.T) {
	h := newHarness(t,
		button.Center, // Q
		button.Right,
		button.Center, // W
		button.Up,     // bottom row, space
		button.Right,  // accept
		button.Center,
	)
	code, text := h.ui.Input("Name", 8, "", Alnum, "Header")
	assert.Equal(t, button.Center, code)
	assert.Equal(t, "QW", text)
	assert.True(t, h.log.contains(`input "Name": accepted`))
	h.done(t)
}

func TestInputEnterReturnsImmediately(t *testing.T) {
	for _, exit := range []button.Code{button.Enter, button.Enter.Long()} {
		h := newHarness(t, button.Center, exit)
		code, text := h.ui.Input("Name", 8, "", nil, "")
		assert.Equal(t, exit, code)
		assert.Equal(t, "Q", text)
		h.done(t)
	}
}

func TestInputChangesLayout(t *testing.T) {
	h := newHarness(t, button.Change, button.Center, button.Up.Long(), button.Up.Long(), button.Center, button.Down.Long(), button.Center, button.Enter)
	_, text := h.ui.Input("Name", 8, "", Alnum, "")
	assert.Equal(t, "q+Q", text)
	h.done(t)
}

func TestInputBlinkTicksAreIgnored(t *testing.T) {
	h := newHarness(t, button.None, button.None, button.None, button.Center, button.Enter)
	_, text := h.ui.Input("Name", 8, "", Alnum, "")
	assert.Equal(t, "Q", text)
	assert.Equal(t, 5, h.fb.presents)
	h.done(t)
}

func TestInputBackspace(t *testing.T) {
	h := newHarness(t, button.Up, button.Center, button.Center, button.Center, button.Enter)
	_, text := h.ui.Input("Name", 8, "ab", Alnum, "")
	assert.Empty(t, text)
	h.done(t)
}
