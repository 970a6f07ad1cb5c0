//go:build !tinygo

package tftui

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"drawbot/button"
	"drawbot/display"
)

func TestMenuStateScrollScenario(t *testing.T) {
	m := newMenuState(9, 6, 0)
	for i := 0; i < 5; i++ {
		m.apply(button.Down)
	}
	assert.Equal(t, 5, m.active)
	assert.Equal(t, 0, m.first)

	m.apply(button.Down)
	assert.Equal(t, 6, m.active)
	assert.Equal(t, 1, m.first)

	for i := 0; i < 6; i++ {
		m.apply(button.Up)
	}
	assert.Equal(t, 0, m.active)
	assert.Equal(t, 0, m.first)
}

func TestMenuStateLongPress(t *testing.T) {
	m := newMenuState(9, 6, 0)

	m.apply(button.Down.Long())
	assert.Equal(t, 8, m.active)
	assert.Equal(t, 3, m.first)

	m.apply(button.Up.Long())
	assert.Equal(t, 0, m.active)
	assert.Equal(t, 0, m.first)

	short := newMenuState(3, 6, 0)
	short.apply(button.Down.Long())
	assert.Equal(t, 2, short.active)
	assert.Equal(t, 0, short.first)
}

func TestMenuStateInitialActiveVisible(t *testing.T) {
	m := newMenuState(20, 6, 15)
	assert.Equal(t, 15, m.active)
	assert.Equal(t, 10, m.first)

	m = newMenuState(5, 6, 99)
	assert.Equal(t, 4, m.active)
	assert.Equal(t, 0, m.first)
}

func TestMenuStateInvariants(t *testing.T) {
	codes := []button.Code{
		button.Up, button.Down, button.Up.Long(), button.Down.Long(),
		button.Change, button.Enter,
	}
	rng := rand.New(rand.NewSource(1))

	for count := 1; count <= 15; count++ {
		for height := 1; height <= 8; height++ {
			m := newMenuState(count, height, rng.Intn(count+2)-1)
			for step := 0; step < 200; step++ {
				m.apply(codes[rng.Intn(len(codes))])

				msg := fmt.Sprintf("count=%d height=%d step=%d", count, height, step)
				assert.GreaterOrEqual(t, m.active, 0, msg)
				assert.Less(t, m.active, count, msg)
				assert.GreaterOrEqual(t, m.first, 0, msg)
				assert.LessOrEqual(t, m.first, max(0, count-height), msg)
				assert.GreaterOrEqual(t, m.active, m.first, msg)
				assert.Less(t, m.active, m.first+height, msg)
			}
		}
	}
}

func TestMenuStateTerminalCodes(t *testing.T) {
	m := newMenuState(3, 6, 1)
	assert.Equal(t, menuSelected, m.apply(button.Center))
	assert.Equal(t, menuSelected, m.apply(button.Right))
	assert.Equal(t, menuCanceled, m.apply(button.Left))
	assert.Equal(t, menuCanceled, m.apply(button.Left.Long()))
	assert.Equal(t, menuMoved, m.apply(button.Right.Long()))

	empty := newMenuState(0, 6, 0)
	assert.Equal(t, menuMoved, empty.apply(button.Center))
	assert.Equal(t, menuCanceled, empty.apply(button.Left))
}

func TestMenuSelects(t *testing.T) {
	h := newHarness(t, button.Down, button.Down, button.Center)
	items := []string{"Pick a Number", "Show Fonts", "Write Message", "Quit"}

	i, ok := h.ui.Menu("Main", items, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 3, h.fb.presents)
	assert.True(t, h.log.contains(`menu "Main": selected 2`))

	assert.Equal(t, display.RGB565(White), h.lineColor(3), "active row")
	assert.Equal(t, display.RGB565(Blue), h.lineColor(2))
	assert.Equal(t, display.RGB565(Red), h.lineColor(0), "header")
	h.done(t)
}

func TestMenuCancel(t *testing.T) {
	for _, code := range []button.Code{button.Left, button.Left.Long()} {
		h := newHarness(t, button.Down, code)
		_, ok := h.ui.Menu("Main", []string{"a", "b"}, 0)
		assert.False(t, ok)
		assert.True(t, h.log.contains("canceled"))
		h.done(t)
	}
}

func TestMenuFuncScrollsLongList(t *testing.T) {
	h := newHarness(t, button.Down.Long(), button.Up, button.Right)
	label := func(i int) string { return fmt.Sprintf("item %02d", i) }

	i, ok := h.ui.MenuFunc("Long", 40, label, 0)
	assert.True(t, ok)
	assert.Equal(t, 38, i)
	h.done(t)
}

func TestMenuStartsAtActive(t *testing.T) {
	h := newHarness(t, button.Center)
	i, ok := h.ui.Menu("Fonts", []string{"a", "b", "c"}, 2)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}
