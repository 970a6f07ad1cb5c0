//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger Logger
	led    *hostLED
	gpio   GPIO
	pins   []*VirtualPin
	fb     *hostFramebuffer
	kbd    *hostKeyboard

	flashOnce sync.Once
	flash     *hostFlash
}

// New returns a host HAL implementation logging to stdout.
func New() HAL {
	return NewWithLogger(&hostLogger{w: os.Stdout})
}

// NewWithLogger returns a host HAL that writes log lines to l.
func NewWithLogger(l Logger) HAL {
	return newHost(l)
}

func newHost(l Logger) *hostHAL {
	if l == nil {
		l = &hostLogger{w: os.Stdout}
	}
	led := &hostLED{logger: l}

	gpioPins := make([]GPIOPin, PinCount)
	pins := make([]*VirtualPin, PinCount)
	for i := range gpioPins {
		if i == PinBacklight {
			gpioPins[i] = newLEDPin(fmt.Sprintf("GPIO%d", i), led)
			continue
		}
		// Active-low buttons idle high.
		p := NewVirtualPin(fmt.Sprintf("GPIO%d", i), GPIOCapInput|GPIOCapOutput|GPIOCapPullUp|GPIOCapPullDown, ActiveLow(i))
		pins[i] = p
		gpioPins[i] = p
	}

	return &hostHAL{
		logger: l,
		led:    led,
		gpio:   newPinTable(gpioPins),
		pins:   pins,
		fb:     newHostFramebuffer(DisplayWidth, DisplayHeight),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Backlight() LED   { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }

// Flash opens the backing file on first use.
func (h *hostHAL) Flash() Flash {
	h.flashOnce.Do(func() { h.flash = newHostFlash(h.logger) })
	return h.flash
}

// press drives a board button pin as if the switch were held down (or released).
func (h *hostHAL) press(pin int, down bool) {
	if pin < 0 || pin >= len(h.pins) || h.pins[pin] == nil {
		return
	}
	h.pins[pin].Drive(down != ActiveLow(pin))
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger Logger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("backlight: on")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("backlight: off")
}
