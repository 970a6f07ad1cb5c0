//go:build !tinygo && !cgo

package hal

type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

func (k *hostKeyboard) poll(*hostHAL) {
	// No keyboard support without the window backend.
}
