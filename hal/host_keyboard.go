//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeyboard mirrors held keys onto the board button pins every frame, so
// the debouncer sees the same level-based signal a physical switch produces.
type hostKeyboard struct {
	keys map[int][]ebiten.Key
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{keys: map[int][]ebiten.Key{
		PinUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
		PinDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
		PinLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
		PinRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
		PinCenter: {ebiten.KeySpace},
		PinZero:   {ebiten.KeyTab},
		PinEnter:  {ebiten.KeyEnter},
	}}
}

func (k *hostKeyboard) poll(h *hostHAL) {
	for pin, keys := range k.keys {
		down := false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		h.press(pin, down)
	}
}
