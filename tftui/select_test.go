//go:build !tinygo

package tftui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drawbot/button"
)

func TestSelectWrapsLeft(t *testing.T) {
	h := newHarness(t, button.Left, button.Center)
	code, v := h.ui.Select(0, 5, []string{"1", "2", "3"}, 0)
	assert.Equal(t, button.Center, code)
	assert.Equal(t, 2, v)
	h.done(t)
}

func TestSelectWrapsRight(t *testing.T) {
	h := newHarness(t, button.Right, button.Right, button.Down)
	code, v := h.ui.Select(0, 5, []string{"Back", "Quit"}, 1)
	assert.Equal(t, button.Down, code)
	assert.Equal(t, 1, v)
	h.done(t)
}

func TestSelectIgnoresOtherCodes(t *testing.T) {
	h := newHarness(t, button.Change, button.Enter, button.Left.Long(), button.Up)
	code, v := h.ui.Select(2, 1, []string{"a", "b", "c"}, 1)
	assert.Equal(t, button.Up, code)
	assert.Equal(t, 1, v)
	h.done(t)
}

func TestSelectNormalizesValue(t *testing.T) {
	h := newHarness(t, button.Center)
	_, v := h.ui.Select(0, 0, []string{"a", "b", "c"}, -1)
	assert.Equal(t, 2, v)
}

func TestSelectNoOptions(t *testing.T) {
	h := newHarness(t)
	code, v := h.ui.Select(0, 0, nil, 4)
	assert.Equal(t, button.None, code)
	assert.Equal(t, 4, v)
}
